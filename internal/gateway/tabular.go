package gateway

import (
	"fmt"
	"strings"

	"fintrack/internal/domain"
)

var headerAliases = map[string][]string{
	"date":        {"date", "booking_date", "buchungstag", "buchungsdatum"},
	"description": {"description", "purpose", "verwendungszweck", "text"},
	"amount":      {"amount", "betrag", "umsatz"},
}

// tableToRows maps a header row plus records onto statement rows. Columns are
// looked up by name so exports with extra or reordered columns still load.
func tableToRows(table [][]string, source string) ([]domain.StatementRow, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("failed to read header from %s: empty table", source)
	}

	index := make(map[string]int)
	for i, name := range table[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		for field, aliases := range headerAliases {
			for _, alias := range aliases {
				if name == alias {
					if _, seen := index[field]; !seen {
						index[field] = i
					}
				}
			}
		}
	}
	for _, field := range []string{"date", "description", "amount"} {
		if _, ok := index[field]; !ok {
			return nil, fmt.Errorf("missing %q column in %s", field, source)
		}
	}

	cell := func(record []string, field string) string {
		i := index[field]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []domain.StatementRow
	for n, record := range table[1:] {
		if isBlank(record) {
			continue
		}
		rows = append(rows, domain.StatementRow{
			Line:        n + 2,
			BookingDate: cell(record, "date"),
			Description: cell(record, "description"),
			Amount:      cell(record, "amount"),
		})
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
