package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain"
	"fintrack/internal/engine"
	"fintrack/internal/usecase"
	mock_usecase "fintrack/internal/usecase/mocks"
)

var shoppingRules = domain.CategoryRules{{ID: "shopping", Name: "Shopping", Keywords: []string{"amazon"}}}

func box(x0, y0, x1, y1 float64) domain.BoundingBox {
	return domain.BoundingBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func TestFragmentStatementParser_Parse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fragments := []domain.Fragment{
		{Page: 1, Box: box(40, 760, 120, 770), Text: "Alter Saldo"},
		{Page: 1, Box: box(380, 760, 400, 770), Text: "EUR"},
		{Page: 1, Box: box(420, 760, 500, 770), Text: "+ 1.000,00"},
		{Page: 1, Box: box(50, 700, 90, 710), Text: "01.01.2024"},
		{Page: 1, Box: box(320, 700, 400, 710), Text: "- 123,45"},
		{Page: 1, Box: box(150, 700, 300, 710), Text: "Amazon Marketplace"},
	}

	extractor := mock_usecase.NewMockFragmentExtractor(ctrl)
	extractor.EXPECT().ReadFragments(gomock.Any(), "statement.pdf").Return(fragments, nil)

	parser := usecase.NewFragmentStatementParser(extractor, engine.New(shoppingRules))
	stmt, err := parser.Parse(context.Background(), "statement.pdf")
	require.NoError(t, err)

	assert.Equal(t, "statement.pdf", stmt.Source)
	require.Len(t, stmt.Transactions, 1)
	assert.Equal(t, "Shopping", stmt.Transactions[0].Purpose)
	assert.Equal(t, "876.55", stmt.Transactions[0].Balance.StringFixed(2))
}

func TestFragmentStatementParser_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("extraction error", func(t *testing.T) {
		extractor := mock_usecase.NewMockFragmentExtractor(ctrl)
		extractor.EXPECT().ReadFragments(gomock.Any(), "broken.pdf").Return(nil, errors.New("malformed PDF"))

		_, err := usecase.NewFragmentStatementParser(extractor, engine.New(nil)).Parse(context.Background(), "broken.pdf")
		assert.ErrorContains(t, err, "malformed PDF")
	})

	t.Run("date format error propagates", func(t *testing.T) {
		extractor := mock_usecase.NewMockFragmentExtractor(ctrl)
		extractor.EXPECT().ReadFragments(gomock.Any(), "bad-date.pdf").Return([]domain.Fragment{
			{Page: 1, Box: box(50, 700, 90, 710), Text: "32.01.2024"},
		}, nil)

		_, err := usecase.NewFragmentStatementParser(extractor, engine.New(nil)).Parse(context.Background(), "bad-date.pdf")
		var dfe *domain.DateFormatError
		assert.True(t, errors.As(err, &dfe))
	})
}

func TestTabularStatementParser_Parse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		rows       []domain.StatementRow
		readErr    error
		wantErr    bool
		wantOrder  []string
		wantLast   string
		wantDebits int
	}{
		{
			name: "rows are categorized sorted and balanced from zero",
			rows: []domain.StatementRow{
				{Line: 2, BookingDate: "05.01.2024", Description: "Amazon EU", Amount: "-23,50"},
				{Line: 3, BookingDate: "01.01.2024", Description: "Gehalt", Amount: "1.500,00"},
				{Line: 4, BookingDate: "05.01.2024", Description: "Refund", Amount: "+3,50"},
			},
			wantOrder:  []string{"Personal", "Shopping", "Personal"},
			wantLast:   "1480.00",
			wantDebits: 1,
		},
		{
			name:    "bad amount",
			rows:    []domain.StatementRow{{Line: 2, BookingDate: "01.01.2024", Amount: "12.00"}},
			wantErr: true,
		},
		{
			name:    "bad date",
			rows:    []domain.StatementRow{{Line: 2, BookingDate: "2024-01-01", Amount: "12,00"}},
			wantErr: true,
		},
		{
			name:    "reader error",
			readErr: errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mock_usecase.NewMockTabularReader(ctrl)
			reader.EXPECT().ReadRows(gomock.Any(), "export.csv").Return(tt.rows, tt.readErr)

			stmt, err := usecase.NewTabularStatementParser(reader, engine.New(shoppingRules)).Parse(context.Background(), "export.csv")
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, stmt)
				return
			}
			require.NoError(t, err)
			assert.True(t, stmt.HasWarning(domain.WarningMissingStartBalance))

			var purposes []string
			debits := 0
			for _, tx := range stmt.Transactions {
				purposes = append(purposes, tx.Purpose)
				if tx.Debit.Valid {
					debits++
					assert.False(t, tx.Credit.Valid)
				}
			}
			assert.Equal(t, tt.wantOrder, purposes)
			assert.Equal(t, tt.wantDebits, debits)
			assert.Equal(t, tt.wantLast, stmt.Transactions[len(stmt.Transactions)-1].Balance.StringFixed(2))
		})
	}
}
