package engine

import (
	"math"
	"sort"

	"fintrack/internal/domain"
)

// histogram counts coordinates and remembers the order they were first seen in,
// which breaks ties between equally frequent values.
type histogram struct {
	counts map[float64]int
	order  []float64
}

func newHistogram() *histogram {
	return &histogram{counts: make(map[float64]int)}
}

func (h *histogram) add(v float64) {
	if _, ok := h.counts[v]; !ok {
		h.order = append(h.order, v)
	}
	h.counts[v]++
}

// topTwo returns the two most frequent values. With one distinct value it is
// returned twice; ok is false when the histogram is empty.
func (h *histogram) topTwo() (a, b float64, ok bool) {
	if len(h.order) == 0 {
		return 0, 0, false
	}
	ranked := make([]float64, len(h.order))
	copy(ranked, h.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return h.counts[ranked[i]] > h.counts[ranked[j]]
	})
	if len(ranked) == 1 {
		return ranked[0], ranked[0], true
	}
	return ranked[0], ranked[1], true
}

// LocateColumns infers the column layout from the whole fragment set.
func LocateColumns(fragments []domain.Fragment) domain.ColumnLayout {
	dates, credits, debits := newHistogram(), newHistogram(), newHistogram()
	for _, f := range fragments {
		if isDate(f.Text) {
			dates.add(f.Box.X0)
		}
		if isCredit(f.Text) {
			credits.add(f.Box.X1)
		}
		if isDebit(f.Text) {
			debits.add(f.Box.X1)
		}
	}

	var layout domain.ColumnLayout
	if a, b, ok := dates.topTwo(); ok {
		layout.BookingDateX = math.Min(a, b)
		layout.ValutaDateX = math.Max(a, b)
		layout.HasDates = true
	}
	if a, b, ok := credits.topTwo(); ok {
		layout.CreditRightEdgeX = round2(math.Max(a, b))
		layout.HasCredit = true
	}
	if a, b, ok := debits.topTwo(); ok {
		layout.DebitRightEdgeX = round2(math.Max(a, b))
		layout.HasDebit = true
	}
	return layout
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
