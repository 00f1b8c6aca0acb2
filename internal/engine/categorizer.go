package engine

import (
	"strings"

	"fintrack/internal/domain"
)

// Categorizer assigns a display category to free text using ordered keyword rules.
type Categorizer struct {
	rules       domain.CategoryRules
	defaultName string
}

// NewCategorizer keeps rules in the order given; an empty defaultName means domain.DefaultCategory.
func NewCategorizer(rules domain.CategoryRules, defaultName string) *Categorizer {
	if defaultName == "" {
		defaultName = domain.DefaultCategory
	}
	return &Categorizer{rules: rules, defaultName: defaultName}
}

// Categorize returns the name of the first rule with a keyword contained in text.
func (c *Categorizer) Categorize(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Name
			}
		}
	}
	return c.defaultName
}
