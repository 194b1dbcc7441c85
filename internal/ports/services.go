package ports

import (
	"context"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
)

// DealService defines the service port for pipeline operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type DealService interface {
	// ListDeals returns deals matching the filter in board order.
	// Returns domain.ErrValidation if the filter names an unknown enum value.
	ListDeals(ctx context.Context, filter deal.Filter) ([]deal.Deal, error)

	// GetDeal returns a single deal by id.
	// Returns domain.ErrNotFound if the deal does not exist.
	GetDeal(ctx context.Context, id string) (*deal.Deal, error)

	// CreateDeal validates the draft and appends it to the end of its stage.
	// Returns domain.ErrValidation if the draft fails validation.
	CreateDeal(ctx context.Context, draft *deal.Draft) (*deal.Deal, error)

	// UpdateDeal applies a partial field update. A changed stage moves the
	// deal to the end of the new stage and closes the gap it left behind.
	// Returns domain.ErrNotFound if the deal does not exist.
	UpdateDeal(ctx context.Context, id string, patch *deal.Patch) (*deal.Deal, error)

	// DeleteDeal removes a deal and renumbers the survivors of its stage.
	// Returns domain.ErrNotFound if the deal does not exist.
	DeleteDeal(ctx context.Context, id string) error

	// ReorderColumn applies a drag-and-drop result: every listed id is placed
	// in the destination stage at its list position, atomically.
	// Returns domain.ErrValidation for malformed input or unknown ids, and
	// domain.ErrConflict if a concurrent move raced this one.
	ReorderColumn(ctx context.Context, req ReorderRequest) error

	// ImportDeals places a batch of drafts at the end of the LEAD stage in
	// input order, as one transaction.
	// Returns domain.ErrValidation if any draft is invalid or, under the
	// reject policy, if an id is duplicated.
	ImportDeals(ctx context.Context, drafts []deal.Draft) (*ImportResult, error)

	// Summary returns per-stage counts and values for the whole pipeline.
	Summary(ctx context.Context) (*deal.Summary, error)
}

// ReorderRequest is the complete ordered content of one stage after a move.
type ReorderRequest struct {
	DestinationStage deal.Stage
	OrderedIDs       []string
}

// SkippedRecord describes an import record dropped by the skip policy.
type SkippedRecord struct {
	Index  int
	ID     string
	Reason string
}

// ImportResult holds the outcome of a bulk import.
type ImportResult struct {
	Imported []deal.Deal
	Skipped  []SkippedRecord
}
