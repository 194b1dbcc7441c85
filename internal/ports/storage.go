package ports

import (
	"context"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
)

// DealStore is the persistent collection of deals, keyed by id.
// Implemented by storage adapters; called by the application layer.
// Every write goes through Transact so that it is applied all-or-nothing and
// durably committed before the call returns.
type DealStore interface {
	// Get returns a single deal by id.
	// Returns domain.ErrNotFound if the deal does not exist.
	Get(ctx context.Context, id string) (*deal.Deal, error)

	// List returns deals matching the filter in board order
	// (stage rank, orderIndex, createdAt).
	List(ctx context.Context, filter deal.Filter) ([]deal.Deal, error)

	// Transact runs fn inside a single transaction. If fn returns an error
	// the transaction is rolled back and the error is returned unchanged;
	// otherwise the transaction is committed. A failed commit is reported
	// as domain.ErrStorage.
	Transact(ctx context.Context, fn func(tx DealTx) error) error

	// Ping verifies the underlying storage is reachable.
	Ping(ctx context.Context) error

	// Close releases the storage handle.
	Close() error
}

// DealTx is the view of the store available inside Transact. Reads observe
// the transaction's own uncommitted writes.
type DealTx interface {
	// LockStages takes storage-level exclusive locks on the given stages for
	// the rest of the transaction. Engines that serialize writers on their
	// own may treat this as a no-op.
	LockStages(ctx context.Context, stages ...deal.Stage) error

	// Get returns a single deal by id.
	// Returns domain.ErrNotFound if the deal does not exist.
	Get(ctx context.Context, id string) (*deal.Deal, error)

	// Exists reports which of the given ids are present.
	Exists(ctx context.Context, ids []string) (map[string]bool, error)

	// ListStage returns the deals of one stage ordered by orderIndex, then
	// createdAt.
	ListStage(ctx context.Context, stage deal.Stage) ([]deal.Deal, error)

	// MaxOrderIndex returns the highest orderIndex in the stage and whether
	// the stage holds any deal at all.
	MaxOrderIndex(ctx context.Context, stage deal.Stage) (int, bool, error)

	// Insert stores a new deal. An empty ID is replaced by a generated one;
	// CreatedAt and UpdatedAt are set by the store. Returns
	// domain.ErrConflict if the id is already taken.
	Insert(ctx context.Context, d *deal.Deal) error

	// Update writes every mutable field of d, including stage and
	// orderIndex, and refreshes UpdatedAt.
	// Returns domain.ErrNotFound if the deal does not exist.
	Update(ctx context.Context, d *deal.Deal) error

	// SetPosition assigns stage and orderIndex to one deal.
	// Returns domain.ErrNotFound if the deal does not exist.
	SetPosition(ctx context.Context, id string, stage deal.Stage, index int) error

	// Delete removes a deal.
	// Returns domain.ErrNotFound if the deal does not exist.
	Delete(ctx context.Context, id string) error
}
