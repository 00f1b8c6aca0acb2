package domain

// CategoryRule maps a set of lowercase keyword substrings to a display name.
type CategoryRule struct {
	ID       string   `json:"id" yaml:"-"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// CategoryRules is evaluated in order; the first matching rule wins.
type CategoryRules []CategoryRule

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "Personal"
