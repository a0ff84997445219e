package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mailroom/internal/core/domain/model/allocation"
	"mailroom/internal/pkg/errs"
)

// rollbackTimeout bounds the compensating delete when the caller's context
// is already cancelled.
const rollbackTimeout = 5 * time.Second

// AssignLockerCommandHandler executes the allocation transaction as a manual
// saga. The datastore offers no atomicity across the two writes (allocation
// row, locker availability flip), so the handler guarantees instead that the
// only visible end states are:
//
//	fully assigned: allocation exists AND locker unavailable
//	not assigned:   no allocation AND locker available
//
// A failed flip triggers a compensating delete of the allocation created
// moments before. If that delete also fails, the system holds an allocation
// referencing a locker still marked available: a consistency fault, logged
// at the highest severity and surfaced distinctly, never swallowed.
//
// The handler performs no retries and no locking; two concurrent assigns
// against the same locker can both pass the availability check, leaving the
// datastore's own row constraints as the only backstop.
type AssignLockerCommandHandler struct {
	store  AssignmentStore
	logger *slog.Logger
}

// NewAssignLockerCommandHandler creates a handler for locker assignment.
func NewAssignLockerCommandHandler(store AssignmentStore, logger *slog.Logger) AssignLockerCommandHandler {
	return AssignLockerCommandHandler{
		store:  store,
		logger: logger.With("component", "assign_locker"),
	}
}

// Handle runs the assignment steps in order, compensating on failure:
//
//  1. validate the command
//  2. fetch the locker (not found / conflict checks)
//  3. create the allocation at the baseline occupancy
//  4. flip the locker to unavailable
//  5. on flip failure, delete the allocation and propagate the flip error
func (h AssignLockerCommandHandler) Handle(ctx context.Context, cmd AssignLockerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lockers := h.store.LockerRepository()
	allocations := h.store.AllocationRepository()

	l, err := lockers.Get(ctx, cmd.LockerID())
	if err != nil {
		return err
	}

	if markErr := l.MarkAssigned(); markErr != nil {
		return errs.NewResourceConflictErrorWithCause("lockerId", cmd.LockerID().String(), markErr)
	}

	alloc, err := allocation.NewAllocation(cmd.AllocationID(), cmd.RegistrationID(), cmd.LockerID())
	if err != nil {
		return err
	}

	if err = allocations.Add(ctx, alloc); err != nil {
		// Nothing durable was written; no compensation needed.
		return err
	}

	// The allocation row exists. From here on, every exit must either
	// complete the flip or remove the row again, even if the caller has
	// already gone away.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return h.rollback(ctx, cmd, ctxErr)
	}

	if flipErr := lockers.Update(ctx, l); flipErr != nil {
		return h.rollback(ctx, cmd, flipErr)
	}

	return nil
}

// rollback deletes the allocation created earlier in the saga and returns
// the original failure enriched with the rollback outcome. The delete runs
// on a context detached from the caller's cancellation so that a cancelled
// request cannot leave a partial state behind.
func (h AssignLockerCommandHandler) rollback(ctx context.Context, cmd AssignLockerCommand, cause error) error {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if rbErr := h.store.AllocationRepository().Delete(rbCtx, cmd.AllocationID()); rbErr != nil {
		fault := errs.NewConsistencyFaultErrorWithCause(
			"allocation",
			fmt.Sprintf("rollback failed after locker flip failure (%s); allocation %s references locker %s still marked available",
				cause, cmd.AllocationID(), cmd.LockerID()),
			rbErr,
		)

		h.logger.ErrorContext(ctx, "assignment left a partial state",
			"allocation_id", cmd.AllocationID().String(),
			"locker_id", cmd.LockerID().String(),
			"flip_error", cause,
			"rollback_error", rbErr,
		)

		return fault
	}

	h.logger.WarnContext(ctx, "assignment rolled back",
		"allocation_id", cmd.AllocationID().String(),
		"locker_id", cmd.LockerID().String(),
		"error", cause,
	)

	return fmt.Errorf("assignment rolled back: %w", cause)
}
