package ports

import (
	"context"

	"github.com/jsamuelsen11/deal-pipeline/internal/domain/deal"
)

// StageLocker provides per-stage mutual exclusion around the ordering
// engine's read-modify-write sequences.
//
// Lock acquires every given stage (duplicates are ignored) in board order so
// that concurrent callers cannot deadlock. It waits at most until ctx is done
// or the implementation's wait timeout elapses, then returns an error
// wrapping domain.ErrConflict. The returned release function is idempotent.
type StageLocker interface {
	Lock(ctx context.Context, stages ...deal.Stage) (release func(), err error)
}
