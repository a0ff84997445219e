package commands

import (
	"context"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/kernel"

	gocache "github.com/patrickmn/go-cache"
)

// CapacityLedger keeps each site's totalLockers counter equal to its live
// locker count without a table scan on the read path.
//
// Writes always go to the datastore first; the in-process snapshot cache is
// advisory only, refreshed on reads and invalidated after every counter
// write, and never consulted when writing.
//
// Known weaknesses, accepted rather than papered over:
//   - OnLockerCreated failing after the locker row was created leaves the
//     counter stale until the reconciliation pass repairs it.
//   - OnLockerDeleted is a read-then-write, not an atomic decrement; two
//     concurrent deletions against the same site can race and
//     under-decrement. The reconciliation pass repairs this too.
type CapacityLedger struct {
	store    SiteStore
	snapshot *gocache.Cache
	logger   *slog.Logger
}

// NewCapacityLedger creates a ledger whose advisory snapshots expire after
// ttl.
func NewCapacityLedger(store SiteStore, ttl time.Duration, logger *slog.Logger) *CapacityLedger {
	return &CapacityLedger{
		store:    store,
		snapshot: gocache.New(ttl, 2*ttl),
		logger:   logger.With("component", "capacity_ledger"),
	}
}

// OnLockerCreated increments the site's counter in a single atomic update.
// Precondition: the locker row has already been durably created. On failure
// the counter is stale relative to the new row; the drift is logged and left
// for the reconciliation pass.
func (l *CapacityLedger) OnLockerCreated(ctx context.Context, siteID kernel.UUID) error {
	if err := l.store.SiteRepository().IncrementLockerCount(ctx, siteID); err != nil {
		l.logger.WarnContext(ctx, "locker counter increment failed, counter stale until reconciliation",
			"site_id", siteID.String(), "error", err)
		return err
	}

	l.Invalidate(siteID)
	return nil
}

// OnLockerDeleted reads the site's counter, floors max(0, current-1), and
// writes it back. The floor keeps the counter non-negative even when it was
// already out of sync; hitting the floor is logged as a consistency fault
// because it proves pre-existing drift.
func (l *CapacityLedger) OnLockerDeleted(ctx context.Context, siteID kernel.UUID) error {
	sites := l.store.SiteRepository()

	s, err := sites.Get(ctx, siteID)
	if err != nil {
		return err
	}

	if floored := s.RecordLockerRemoved(); floored {
		l.logger.ErrorContext(ctx, "locker counter was already zero on deletion, counter had drifted",
			"site_id", siteID.String())
	}

	if err := sites.Update(ctx, s); err != nil {
		l.logger.WarnContext(ctx, "locker counter decrement failed, counter stale until reconciliation",
			"site_id", siteID.String(), "error", err)
		return err
	}

	l.Invalidate(siteID)
	return nil
}

// Snapshot returns the site's counter, serving repeated reads from the
// advisory cache. The value may lag a concurrent write by up to the cache
// TTL; writes must never depend on it.
func (l *CapacityLedger) Snapshot(ctx context.Context, siteID kernel.UUID) (int, error) {
	key := siteID.String()

	if cached, ok := l.snapshot.Get(key); ok {
		return cached.(int), nil
	}

	s, err := l.store.SiteRepository().Get(ctx, siteID)
	if err != nil {
		return 0, err
	}

	l.snapshot.SetDefault(key, s.TotalLockers())
	return s.TotalLockers(), nil
}

// Invalidate drops the cached snapshot for a site. Called after every
// counter write, including reconciliation repairs.
func (l *CapacityLedger) Invalidate(siteID kernel.UUID) {
	l.snapshot.Delete(siteID.String())
}
