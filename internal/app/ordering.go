package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain"
	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
	"github.com/jsamuelsen11/deal-pipeline/internal/ports"
)

// OrderingEngine owns every write that touches a deal's position. Within a
// stage the orderIndex values always form 0..k-1 after a write commits.
//
// Each operation locks the stages it touches through the StageLocker, then
// runs one store transaction. Stages are planned from a read taken before
// locking; if a deal has changed stage by the time the locks are held the
// operation fails with domain.ErrConflict instead of retrying.
type OrderingEngine struct {
	store  ports.DealStore
	locker ports.StageLocker
}

// NewOrderingEngine creates an OrderingEngine.
func NewOrderingEngine(store ports.DealStore, locker ports.StageLocker) *OrderingEngine {
	return &OrderingEngine{store: store, locker: locker}
}

// withStages runs fn in a transaction while holding the given stages.
func (e *OrderingEngine) withStages(ctx context.Context, stages []deal.Stage, fn func(tx ports.DealTx) error) error {
	release, err := e.locker.Lock(ctx, stages...)
	if err != nil {
		return err
	}
	defer release()

	return e.store.Transact(ctx, func(tx ports.DealTx) error {
		if err := tx.LockStages(ctx, stages...); err != nil {
			return err
		}
		return fn(tx)
	})
}

// Append stores d at the end of its stage. The next index is computed inside
// the inserting transaction.
func (e *OrderingEngine) Append(ctx context.Context, d *deal.Deal) error {
	return e.withStages(ctx, []deal.Stage{d.Stage}, func(tx ports.DealTx) error {
		next, err := nextIndex(ctx, tx, d.Stage)
		if err != nil {
			return err
		}
		d.OrderIndex = next
		if err := d.Validate(); err != nil {
			return err
		}
		return tx.Insert(ctx, d)
	})
}

// Update applies patch to the deal with the given id. A stage change moves
// the deal to the end of the new stage and closes the gap in the old one.
func (e *OrderingEngine) Update(ctx context.Context, id string, patch *deal.Patch) (*deal.Deal, error) {
	current, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := current.Stage
	stages := []deal.Stage{from}
	if patch.MovesStage(current) {
		stages = append(stages, *patch.Stage)
	}

	var updated *deal.Deal
	err = e.withStages(ctx, stages, func(tx ports.DealTx) error {
		d, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if d.Stage != from {
			return stageMovedError(id)
		}

		moves := patch.MovesStage(d)
		patch.Apply(d)
		if moves {
			if !d.Stage.IsValid() {
				return d.Validate()
			}
			next, err := nextIndex(ctx, tx, d.Stage)
			if err != nil {
				return err
			}
			d.OrderIndex = next
		}
		if err := d.Validate(); err != nil {
			return err
		}
		if err := tx.Update(ctx, d); err != nil {
			return err
		}
		if moves {
			if err := compact(ctx, tx, from); err != nil {
				return err
			}
		}
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes a deal and renumbers the survivors of its stage.
func (e *OrderingEngine) Remove(ctx context.Context, id string) error {
	current, err := e.store.Get(ctx, id)
	if err != nil {
		return err
	}

	return e.withStages(ctx, []deal.Stage{current.Stage}, func(tx ports.DealTx) error {
		d, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if d.Stage != current.Stage {
			return stageMovedError(id)
		}
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		return compact(ctx, tx, d.Stage)
	})
}

// ApplyColumnReorder makes orderedIDs the leading content of destination, in
// list order. Deals already in destination but not listed follow them in
// their previous relative order, and every stage a listed deal came from is
// renumbered. All of it commits or none of it does.
func (e *OrderingEngine) ApplyColumnReorder(ctx context.Context, destination deal.Stage, orderedIDs []string) error {
	if err := validateReorder(destination, orderedIDs); err != nil {
		return err
	}

	planned, err := e.planSources(ctx, orderedIDs)
	if err != nil {
		return err
	}

	stages := []deal.Stage{destination}
	for _, st := range planned {
		stages = append(stages, st)
	}

	return e.withStages(ctx, stages, func(tx ports.DealTx) error {
		members, err := tx.ListStage(ctx, destination)
		if err != nil {
			return err
		}

		listed := make(map[string]bool, len(orderedIDs))
		sources := make(map[deal.Stage]bool)
		for i, id := range orderedIDs {
			listed[id] = true

			d, err := tx.Get(ctx, id)
			if err != nil {
				return reorderLookupError(id, err)
			}
			if d.Stage != planned[id] {
				return stageMovedError(id)
			}
			if d.Stage != destination {
				sources[d.Stage] = true
			}
			if d.Stage != destination || d.OrderIndex != i {
				if err := tx.SetPosition(ctx, id, destination, i); err != nil {
					return err
				}
			}
		}

		next := len(orderedIDs)
		for i := range members {
			m := &members[i]
			if listed[m.ID] {
				continue
			}
			if m.OrderIndex != next {
				if err := tx.SetPosition(ctx, m.ID, destination, next); err != nil {
					return err
				}
			}
			next++
		}

		for _, st := range deal.BoardOrder(stageKeys(sources)...) {
			if err := compact(ctx, tx, st); err != nil {
				return err
			}
		}
		return nil
	})
}

// planSources reads the current stage of every listed id. Unknown ids are a
// validation failure and nothing is written.
func (e *OrderingEngine) planSources(ctx context.Context, ids []string) (map[string]deal.Stage, error) {
	if len(ids) == 0 {
		return map[string]deal.Stage{}, nil
	}

	planned := make(map[string]deal.Stage, len(ids))
	var unknown []string
	for _, id := range ids {
		d, err := e.store.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			unknown = append(unknown, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		planned[id] = d.Stage
	}
	if len(unknown) > 0 {
		return nil, domain.NewValidationError("orderedIds", "unknown ids: "+strings.Join(unknown, ", "))
	}
	return planned, nil
}

func validateReorder(destination deal.Stage, ids []string) error {
	fields := make(map[string]string)
	if !destination.IsValid() {
		fields["destinationStage"] = fmt.Sprintf("invalid: %q", destination)
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			fields["orderedIds"] = "ids " + domain.MsgMustNotEmpty
			break
		}
		if seen[id] {
			fields["orderedIds"] = fmt.Sprintf("duplicate id %q", id)
			break
		}
		seen[id] = true
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// nextIndex returns max(orderIndex)+1 for the stage, or 0 when it is empty.
func nextIndex(ctx context.Context, tx ports.DealTx, stage deal.Stage) (int, error) {
	maxIndex, ok, err := tx.MaxOrderIndex(ctx, stage)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return maxIndex + 1, nil
}

// compact renumbers a stage to 0..k-1 keeping its current order.
func compact(ctx context.Context, tx ports.DealTx, stage deal.Stage) error {
	deals, err := tx.ListStage(ctx, stage)
	if err != nil {
		return err
	}
	for i := range deals {
		if deals[i].OrderIndex == i {
			continue
		}
		if err := tx.SetPosition(ctx, deals[i].ID, stage, i); err != nil {
			return err
		}
	}
	return nil
}

func stageKeys(m map[deal.Stage]bool) []deal.Stage {
	out := make([]deal.Stage, 0, len(m))
	for st := range m {
		out = append(out, st)
	}
	return out
}

func stageMovedError(id string) error {
	return fmt.Errorf("deal %s changed stage concurrently: %w", id, domain.ErrConflict)
}

// reorderLookupError turns a deal deleted after planning into the same
// validation failure an unknown id produces up front.
func reorderLookupError(id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("orderedIds", "unknown ids: "+id)
	}
	return err
}
