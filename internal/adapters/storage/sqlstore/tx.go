package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// existsChunk keeps IN lists well below every engine's parameter limit.
const existsChunk = 500

// Compile-time interface check.
var _ ports.DealTx = (*tx)(nil)

type tx struct {
	tx    *sql.Tx
	store *Store
}

func (t *tx) rebind(q string) string {
	return t.store.dialect.rebind(q)
}

// LockStages takes transaction-scoped advisory locks on PostgreSQL. SQLite
// already serializes writers through BEGIN IMMEDIATE on its single
// connection.
func (t *tx) LockStages(ctx context.Context, stages ...deal.Stage) error {
	if !t.store.dialect.numbered {
		return nil
	}
	for _, st := range deal.BoardOrder(stages...) {
		_, err := t.tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, "deal-stage:"+string(st))
		if err != nil {
			return classify("lock stage "+string(st), err)
		}
	}
	return nil
}

func (t *tx) Get(ctx context.Context, id string) (*deal.Deal, error) {
	return getDeal(ctx, t.tx, t.store.dialect, id)
}

func (t *tx) Exists(ctx context.Context, ids []string) (map[string]bool, error) {
	found := make(map[string]bool, len(ids))
	for start := 0; start < len(ids); start += existsChunk {
		end := min(start+existsChunk, len(ids))
		chunk := ids[start:end]

		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}

		rows, err := t.tx.QueryContext(ctx,
			t.rebind("SELECT id FROM deals WHERE id IN ("+placeholders(len(chunk))+")"), args...)
		if err != nil {
			return nil, classify("check ids", err)
		}
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				_ = rows.Close()
				return nil, classify("check ids", err)
			}
			found[id] = true
		}
		if err := rows.Err(); err != nil {
			_ = rows.Close()
			return nil, classify("check ids", err)
		}
		_ = rows.Close()
	}
	return found, nil
}

func (t *tx) ListStage(ctx context.Context, stage deal.Stage) ([]deal.Deal, error) {
	rows, err := t.tx.QueryContext(ctx,
		t.rebind("SELECT "+dealColumns+" FROM deals WHERE stage = ?"), string(stage))
	if err != nil {
		return nil, classify("list stage", err)
	}
	deals, err := scanDeals(rows)
	if err != nil {
		return nil, classify("list stage", err)
	}
	deal.SortBoard(deals)
	return deals, nil
}

func (t *tx) MaxOrderIndex(ctx context.Context, stage deal.Stage) (int, bool, error) {
	var maxIndex sql.NullInt64
	err := t.tx.QueryRowContext(ctx,
		t.rebind("SELECT MAX(order_index) FROM deals WHERE stage = ?"), string(stage),
	).Scan(&maxIndex)
	if err != nil {
		return 0, false, classify("max order index", err)
	}
	if !maxIndex.Valid {
		return 0, false, nil
	}
	return int(maxIndex.Int64), true, nil
}

func (t *tx) Insert(ctx context.Context, d *deal.Deal) error {
	if d.ID == "" {
		d.ID = t.store.newID()
	} else {
		var n int
		err := t.tx.QueryRowContext(ctx, t.rebind("SELECT COUNT(*) FROM deals WHERE id = ?"), d.ID).Scan(&n)
		if err != nil {
			return classify("insert deal", err)
		}
		if n > 0 {
			return fmt.Errorf("deal %s already exists: %w", d.ID, domain.ErrConflict)
		}
	}

	now := t.store.stamp()
	d.CreatedAt = now
	d.UpdatedAt = now

	_, err := t.tx.ExecContext(ctx, t.rebind(`
		INSERT INTO deals (`+dealColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		d.ID, d.Title, d.Company, d.Contact, d.Notes,
		d.Value.String(), string(d.Priority), string(d.Stage), d.OrderIndex,
		dueDateArg(d.DueDate), d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return classify("insert deal", err)
	}
	return nil
}

func (t *tx) Update(ctx context.Context, d *deal.Deal) error {
	d.UpdatedAt = t.store.stamp()

	res, err := t.tx.ExecContext(ctx, t.rebind(`
		UPDATE deals
		SET title = ?, company = ?, contact = ?, notes = ?, value = ?,
			priority = ?, stage = ?, order_index = ?, due_date = ?, updated_at = ?
		WHERE id = ?`),
		d.Title, d.Company, d.Contact, d.Notes, d.Value.String(),
		string(d.Priority), string(d.Stage), d.OrderIndex, dueDateArg(d.DueDate), d.UpdatedAt,
		d.ID,
	)
	if err != nil {
		return classify("update deal", err)
	}
	return requireAffected(res, "update deal", d.ID)
}

func (t *tx) SetPosition(ctx context.Context, id string, stage deal.Stage, index int) error {
	res, err := t.tx.ExecContext(ctx, t.rebind(`
		UPDATE deals SET stage = ?, order_index = ?, updated_at = ? WHERE id = ?`),
		string(stage), index, t.store.stamp(), id,
	)
	if err != nil {
		return classify("set position", err)
	}
	return requireAffected(res, "set position", id)
}

func (t *tx) Delete(ctx context.Context, id string) error {
	res, err := t.tx.ExecContext(ctx, t.rebind("DELETE FROM deals WHERE id = ?"), id)
	if err != nil {
		return classify("delete deal", err)
	}
	return requireAffected(res, "delete deal", id)
}

func requireAffected(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return classify(op, err)
	}
	if n == 0 {
		return fmt.Errorf("deal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
