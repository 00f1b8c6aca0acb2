package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fintrack/internal/domain"
)

// CSVStatementReader reads tabular statement exports in CSV format.
type CSVStatementReader struct {
	// Comma is the field delimiter; German bank exports usually use ';'.
	Comma rune
}

// NewCSVStatementReader creates a new reader instance.
func NewCSVStatementReader(comma rune) *CSVStatementReader {
	if comma == 0 {
		comma = ';'
	}
	return &CSVStatementReader{Comma: comma}
}

// ReadRows reads and parses the statement CSV file.
func (r *CSVStatementReader) ReadRows(ctx context.Context, path string) ([]domain.StatementRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = r.Comma
	reader.FieldsPerRecord = -1

	var table [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		table = append(table, record)
	}
	return tableToRows(table, path)
}
