package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ReconcileCapacityCommandHandler repairs drift between each site's
// denormalized locker counter and the true count of its locker rows. It is
// the safety net behind the incremental counter maintenance: crashed
// decrements, racing deletions, and failed increments all converge back to
// the true value the next time this runs.
type ReconcileCapacityCommandHandler struct {
	store  RegistryStore
	ledger *CapacityLedger
	logger *slog.Logger
}

// NewReconcileCapacityCommandHandler creates a handler for counter
// reconciliation.
func NewReconcileCapacityCommandHandler(
	store RegistryStore,
	ledger *CapacityLedger,
	logger *slog.Logger,
) ReconcileCapacityCommandHandler {
	return ReconcileCapacityCommandHandler{
		store:  store,
		ledger: ledger,
		logger: logger.With("component", "capacity_reconciliation"),
	}
}

// Handle recounts every site. A failure on one site does not stop the
// others; all failures are joined into the returned error.
func (h ReconcileCapacityCommandHandler) Handle(ctx context.Context, cmd ReconcileCapacityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sites := h.store.SiteRepository()
	lockers := h.store.LockerRepository()

	all, err := sites.GetAll(ctx)
	if err != nil {
		return err
	}

	var failures []error

	for _, s := range all {
		actual, countErr := lockers.CountBySite(ctx, s.ID())
		if countErr != nil {
			failures = append(failures, fmt.Errorf("count lockers of site %s: %w", s.ID(), countErr))
			continue
		}

		if actual == s.TotalLockers() {
			continue
		}

		recorded := s.TotalLockers()

		if setErr := s.SetLockerCount(actual); setErr != nil {
			failures = append(failures, fmt.Errorf("set counter of site %s: %w", s.ID(), setErr))
			continue
		}

		if updateErr := sites.Update(ctx, s); updateErr != nil {
			failures = append(failures, fmt.Errorf("update counter of site %s: %w", s.ID(), updateErr))
			continue
		}

		h.ledger.Invalidate(s.ID())

		h.logger.InfoContext(ctx, "locker counter repaired",
			"site_id", s.ID().String(),
			"recorded", recorded,
			"actual", actual,
		)
	}

	return errors.Join(failures...)
}
