// Package app provides application services that orchestrate the pipeline's
// use cases by coordinating domain rules and infrastructure through port
// interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// Compile-time check that DealService implements ports.DealService.
var _ ports.DealService = (*DealService)(nil)

// DealService implements ports.DealService. Reads go straight to the store;
// every positional write is delegated to the OrderingEngine and bulk loads to
// the Importer.
type DealService struct {
	store    ports.DealStore
	engine   *OrderingEngine
	importer *Importer
	logger   *slog.Logger
}

// NewDealService creates a DealService. A nil logger discards output.
func NewDealService(store ports.DealStore, engine *OrderingEngine, importer *Importer, logger *slog.Logger) *DealService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DealService{
		store:    store,
		engine:   engine,
		importer: importer,
		logger:   logger,
	}
}

// ListDeals returns deals matching the filter in board order.
func (s *DealService) ListDeals(ctx context.Context, filter deal.Filter) ([]deal.Deal, error) {
	s.logger.DebugContext(ctx, "listing deals", slog.String("q", filter.Q))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	deals, err := s.store.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list deals",
			slog.String("operation", "ListDeals"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return deals, nil
}

// GetDeal returns a single deal by id.
func (s *DealService) GetDeal(ctx context.Context, id string) (*deal.Deal, error) {
	d, err := s.store.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "failed to fetch deal", "GetDeal", id, err)
		return nil, err
	}
	return d, nil
}

// CreateDeal applies draft defaults, validates, and appends the deal to the
// end of its stage.
func (s *DealService) CreateDeal(ctx context.Context, draft *deal.Draft) (*deal.Deal, error) {
	s.logger.InfoContext(ctx, "creating deal", slog.String("title", draft.Title))

	d := draft.ToDeal()
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := s.engine.Append(ctx, &d); err != nil {
		s.logFailure(ctx, "failed to create deal", "CreateDeal", d.ID, err)
		return nil, err
	}

	return &d, nil
}

// UpdateDeal applies a partial update. An empty patch returns the deal
// unchanged.
func (s *DealService) UpdateDeal(ctx context.Context, id string, patch *deal.Patch) (*deal.Deal, error) {
	s.logger.InfoContext(ctx, "updating deal", slog.String("id", id))

	if patch.IsEmpty() {
		return s.GetDeal(ctx, id)
	}
	if patch.Stage != nil && !patch.Stage.IsValid() {
		return nil, domain.NewValidationError("stage", "invalid: "+string(*patch.Stage))
	}

	updated, err := s.engine.Update(ctx, id, patch)
	if err != nil {
		s.logFailure(ctx, "failed to update deal", "UpdateDeal", id, err)
		return nil, err
	}

	return updated, nil
}

// DeleteDeal removes a deal and renumbers its former stage.
func (s *DealService) DeleteDeal(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting deal", slog.String("id", id))

	if err := s.engine.Remove(ctx, id); err != nil {
		s.logFailure(ctx, "failed to delete deal", "DeleteDeal", id, err)
		return err
	}

	return nil
}

// ReorderColumn applies a drag-and-drop result to one stage.
func (s *DealService) ReorderColumn(ctx context.Context, req ports.ReorderRequest) error {
	s.logger.InfoContext(ctx, "reordering column",
		slog.String("stage", string(req.DestinationStage)),
		slog.Int("count", len(req.OrderedIDs)),
	)

	if err := s.engine.ApplyColumnReorder(ctx, req.DestinationStage, req.OrderedIDs); err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConflict) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "failed to reorder column",
			slog.String("operation", "ReorderColumn"),
			slog.String("stage", string(req.DestinationStage)),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ImportDeals places a batch of drafts at the end of the LEAD stage.
func (s *DealService) ImportDeals(ctx context.Context, drafts []deal.Draft) (*ports.ImportResult, error) {
	s.logger.InfoContext(ctx, "importing deals", slog.Int("count", len(drafts)))

	result, err := s.importer.Import(ctx, drafts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to import deals",
			slog.String("operation", "ImportDeals"),
			slog.Int("count", len(drafts)),
			slog.Any("error", err),
		)
		return nil, err
	}

	if len(result.Skipped) > 0 {
		s.logger.WarnContext(ctx, "skipped duplicate import records",
			slog.Int("imported", len(result.Imported)),
			slog.Int("skipped", len(result.Skipped)),
		)
	}
	return result, nil
}

// Summary aggregates the whole pipeline.
func (s *DealService) Summary(ctx context.Context) (*deal.Summary, error) {
	deals, err := s.store.List(ctx, deal.Filter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to summarize pipeline",
			slog.String("operation", "Summary"),
			slog.Any("error", err),
		)
		return nil, err
	}

	summary := deal.Summarize(deals)
	return &summary, nil
}

// logFailure logs an operation error. Not-found is an expected outcome and
// is logged at debug.
func (s *DealService) logFailure(ctx context.Context, msg, operation, id string, err error) {
	level := slog.LevelError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		level = slog.LevelDebug
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, msg,
		slog.String("operation", operation),
		slog.String("id", id),
		slog.Any("error", err),
	)
}
