package gateway

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dslipak/pdf"

	"fintrack/internal/domain"
)

const (
	// Glyphs whose baselines differ by less than this belong to the same line.
	baselineTolerance = 0.5
	// A horizontal gap wider than gapFactor * font size starts a new fragment.
	gapFactor = 1.0
	// A gap wider than spaceFactor * font size inside a fragment becomes a space.
	spaceFactor = 0.15
)

// PDFFragmentReader extracts positioned text fragments from PDF statements.
type PDFFragmentReader struct{}

// NewPDFFragmentReader creates a new reader instance.
func NewPDFFragmentReader() *PDFFragmentReader {
	return &PDFFragmentReader{}
}

// ReadFragments returns the fragments of every page, pages numbered from 1.
func (r *PDFFragmentReader) ReadFragments(ctx context.Context, path string) ([]domain.Fragment, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file %s: %w", path, err)
	}

	var fragments []domain.Fragment
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, mergeGlyphs(i, page.Content().Text)...)
	}
	return fragments, nil
}

// mergeGlyphs joins consecutive glyphs on one baseline into fragments.
func mergeGlyphs(page int, glyphs []pdf.Text) []domain.Fragment {
	var (
		fragments []domain.Fragment
		current   *domain.Fragment
		text      strings.Builder
		size      float64
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(text.String())
		if current.Text != "" {
			current.Box = roundBox(current.Box)
			fragments = append(fragments, *current)
		}
		current = nil
		text.Reset()
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if current != nil {
			gap := g.X - current.Box.X1
			sameLine := math.Abs(g.Y-current.Box.Y0) < baselineTolerance
			if !sameLine || gap > gapFactor*size || gap < -size {
				flush()
			} else if gap > spaceFactor*size {
				text.WriteByte(' ')
			}
		}
		if current == nil {
			current = &domain.Fragment{
				Page: page,
				Box:  domain.BoundingBox{X0: g.X, Y0: g.Y, X1: g.X, Y1: g.Y + g.FontSize},
			}
			size = g.FontSize
		}
		text.WriteString(g.S)
		current.Box.X1 = g.X + g.W
		current.Box.Y1 = math.Max(current.Box.Y1, g.Y+g.FontSize)
	}
	flush()
	return fragments
}

func roundBox(b domain.BoundingBox) domain.BoundingBox {
	r := func(v float64) float64 { return math.Round(v*1000) / 1000 }
	return domain.BoundingBox{X0: r(b.X0), Y0: r(b.Y0), X1: r(b.X1), Y1: r(b.Y1)}
}
