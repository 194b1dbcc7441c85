package sqlstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/deal-pipeline/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/platform/config"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

func sqliteConfig(path string) config.DatabaseConfig {
	return config.DatabaseConfig{Driver: config.DriverSQLite, Path: path, MaxOpenConns: 1}
}

func openStore(t *testing.T) *sqlstore.Store {
	t.Helper()

	s, err := sqlstore.Open(context.Background(), sqliteConfig(filepath.Join(t.TempDir(), "pipeline.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func insert(t *testing.T, s *sqlstore.Store, d *deal.Deal) {
	t.Helper()

	err := s.Transact(context.Background(), func(tx ports.DealTx) error {
		return tx.Insert(context.Background(), d)
	})
	require.NoError(t, err)
}

func TestOpen_MigratesOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "pipeline.db")
	ctx := context.Background()

	first, err := sqlstore.Open(ctx, sqliteConfig(path))
	require.NoError(t, err)
	insert(t, first, &deal.Deal{Title: "Survives reopen", Priority: deal.PriorityLow, Stage: deal.StageLead})
	require.NoError(t, first.Close())

	second, err := sqlstore.Open(ctx, sqliteConfig(path))
	require.NoError(t, err)
	defer second.Close()

	deals, err := second.List(ctx, deal.Filter{})
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Survives reopen", deals[0].Title)
	assert.Equal(t, config.DriverSQLite, second.Driver())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := sqlstore.Open(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
}

func TestStore_InsertGetRoundTrip(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 10, 15, 12, 30, 45, 123456789, time.UTC)
	s, err := sqlstore.Open(context.Background(),
		sqliteConfig(filepath.Join(t.TempDir(), "pipeline.db")),
		sqlstore.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)
	defer s.Close()

	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	d := &deal.Deal{
		Title:      "Website corporativo",
		Company:    "Acme Ltda",
		Contact:    "Mariana Souza",
		Notes:      "Aguardando proposta",
		Value:      decimal.RequireFromString("18000.55"),
		Priority:   deal.PriorityHigh,
		Stage:      deal.StageProposal,
		OrderIndex: 3,
		DueDate:    &due,
	}
	insert(t, s, d)
	require.NotEmpty(t, d.ID, "Insert should assign an id")

	got, err := s.Get(context.Background(), d.ID)
	require.NoError(t, err)

	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Company, got.Company)
	assert.Equal(t, d.Contact, got.Contact)
	assert.Equal(t, d.Notes, got.Notes)
	assert.True(t, d.Value.Equal(got.Value), "value = %s, want %s", got.Value, d.Value)
	assert.Equal(t, deal.PriorityHigh, got.Priority)
	assert.Equal(t, deal.StageProposal, got.Stage)
	assert.Equal(t, 3, got.OrderIndex)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))
	assert.True(t, fixed.Truncate(time.Microsecond).Equal(got.CreatedAt), "createdAt = %v", got.CreatedAt)
	assert.True(t, got.CreatedAt.Equal(got.UpdatedAt))
}

func TestStore_GetNotFound(t *testing.T) {
	t.Parallel()

	s := openStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_InsertDuplicateID(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	insert(t, s, &deal.Deal{ID: "ext-1", Title: "First", Priority: deal.PriorityLow, Stage: deal.StageLead})

	err := s.Transact(context.Background(), func(tx ports.DealTx) error {
		return tx.Insert(context.Background(), &deal.Deal{ID: "ext-1", Title: "Second", Priority: deal.PriorityLow, Stage: deal.StageLead})
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestStore_TransactRollsBack(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	boom := errors.New("boom")

	err := s.Transact(context.Background(), func(tx ports.DealTx) error {
		if err := tx.Insert(context.Background(), &deal.Deal{ID: "gone", Title: "Gone", Priority: deal.PriorityLow, Stage: deal.StageLead}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Get(context.Background(), "gone")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListPushesDownFilters(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	insert(t, s, &deal.Deal{ID: "a", Title: "Acme Corp", Priority: deal.PriorityHigh, Stage: deal.StageLead, OrderIndex: 1})
	insert(t, s, &deal.Deal{ID: "b", Title: "Beta", Company: "ACME Holding", Priority: deal.PriorityLow, Stage: deal.StageLead, OrderIndex: 0})
	insert(t, s, &deal.Deal{ID: "c", Title: "Gamma", Priority: deal.PriorityHigh, Stage: deal.StageWon})

	ctx := context.Background()

	all, err := s.List(ctx, deal.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, idsOf(all))

	lead := deal.StageLead
	high := deal.PriorityHigh
	got, err := s.List(ctx, deal.Filter{Stage: &lead, Priority: &high})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, idsOf(got))

	got, err = s.List(ctx, deal.Filter{Q: "acme"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, idsOf(got))
}

func TestTx_PositionHelpers(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	err := s.Transact(ctx, func(tx ports.DealTx) error {
		_, ok, err := tx.MaxOrderIndex(ctx, deal.StageLead)
		require.NoError(t, err)
		assert.False(t, ok, "empty stage should report no max")

		for i, id := range []string{"x", "y", "z"} {
			require.NoError(t, tx.Insert(ctx, &deal.Deal{ID: id, Title: id, Priority: deal.PriorityMedium, Stage: deal.StageLead, OrderIndex: i}))
		}

		maxIndex, ok, err := tx.MaxOrderIndex(ctx, deal.StageLead)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 2, maxIndex)

		found, err := tx.Exists(ctx, []string{"x", "nope", "z"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"x": true, "z": true}, found)

		require.NoError(t, tx.SetPosition(ctx, "x", deal.StageQualified, 0))
		require.NoError(t, tx.Delete(ctx, "y"))

		lead, err := tx.ListStage(ctx, deal.StageLead)
		require.NoError(t, err)
		assert.Equal(t, []string{"z"}, idsOf(lead))

		moved, err := tx.Get(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, deal.StageQualified, moved.Stage)

		require.ErrorIs(t, tx.SetPosition(ctx, "nope", deal.StageLead, 0), domain.ErrNotFound)
		require.ErrorIs(t, tx.Delete(ctx, "nope"), domain.ErrNotFound)
		require.ErrorIs(t, tx.Update(ctx, &deal.Deal{ID: "nope", Title: "n", Priority: deal.PriorityLow, Stage: deal.StageLead}), domain.ErrNotFound)
		return tx.LockStages(ctx, deal.StageLead, deal.StageWon)
	})
	require.NoError(t, err)
}

func TestTx_UpdateClearsDueDate(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()
	due := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	d := &deal.Deal{ID: "u", Title: "Before", Priority: deal.PriorityLow, Stage: deal.StageLead, DueDate: &due}
	insert(t, s, d)

	d.Title = "After"
	d.DueDate = nil
	d.Value = decimal.RequireFromString("99.90")
	err := s.Transact(ctx, func(tx ports.DealTx) error { return tx.Update(ctx, d) })
	require.NoError(t, err)

	got, err := s.Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	assert.Nil(t, got.DueDate)
	assert.True(t, got.Value.Equal(decimal.RequireFromString("99.9")))
}

func TestStore_Ping(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	require.NoError(t, s.Ping(context.Background()))
}

func idsOf(deals []deal.Deal) []string {
	out := make([]string, len(deals))
	for i := range deals {
		out[i] = deals[i].ID
	}
	return out
}
