package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/domain"
)

func TestSQLiteLedgerStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := OpenSQLiteLedgerStore(filepath.Join(dir, "db", "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	statementPath := filepath.Join(dir, "statement.pdf")
	require.NoError(t, os.WriteFile(statementPath, []byte("%PDF-1.4 statement"), 0o644))

	processed, err := store.IsProcessed(ctx, statementPath)
	require.NoError(t, err)
	assert.False(t, processed)

	id, err := store.SaveStatement(ctx, statementPath, &domain.Statement{Transactions: sampleTransactions()})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	processed, err = store.IsProcessed(ctx, statementPath)
	require.NoError(t, err)
	assert.True(t, processed)

	t.Run("same content under another name counts as processed", func(t *testing.T) {
		copyPath := filepath.Join(dir, "copy.pdf")
		require.NoError(t, os.WriteFile(copyPath, []byte("%PDF-1.4 statement"), 0o644))
		processed, err := store.IsProcessed(ctx, copyPath)
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("saving the same path twice fails", func(t *testing.T) {
		_, err := store.SaveStatement(ctx, statementPath, &domain.Statement{})
		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})

	got, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	want := sampleTransactions()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Page, got[i].Page)
		assert.True(t, want[i].Date.Equal(got[i].Date))
		assert.Equal(t, want[i].Purpose, got[i].Purpose)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Debit.Valid, got[i].Debit.Valid)
		assert.Equal(t, want[i].Credit.Valid, got[i].Credit.Valid)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.True(t, want[i].Balance.Equal(got[i].Balance))
	}
}

func TestSQLiteLedgerStore_MissingStatementFile(t *testing.T) {
	store, err := OpenSQLiteLedgerStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.IsProcessed(context.Background(), "missing.pdf")
	assert.Error(t, err)
}
