package gateway

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fintrack/internal/domain"
)

// XLSXStatementReader reads the first sheet of an Excel statement export.
type XLSXStatementReader struct{}

// NewXLSXStatementReader creates a new reader instance.
func NewXLSXStatementReader() *XLSXStatementReader {
	return &XLSXStatementReader{}
}

// ReadRows returns the statement rows of the first worksheet.
func (r *XLSXStatementReader) ReadRows(ctx context.Context, path string) ([]domain.StatementRow, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement workbook %s: %w", path, err)
	}
	defer xl.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet := xl.GetSheetName(0)
	table, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from %s: %w", path, err)
	}
	return tableToRows(table, path)
}
