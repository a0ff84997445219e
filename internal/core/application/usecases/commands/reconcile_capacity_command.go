package commands

import (
	"errors"

	"mailroom/internal/pkg/guard"
)

var ErrReconcileCapacityCommandIsNotConstructed = errors.New(
	"ReconcileCapacityCommand must be created via NewReconcileCapacityCommand constructor",
)

// ReconcileCapacityCommand triggers a full recount of every site's locker
// counter. It carries no parameters; the recount always covers all sites.
type ReconcileCapacityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileCapacityCommand creates a reconciliation command.
func NewReconcileCapacityCommand() ReconcileCapacityCommand {
	return ReconcileCapacityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileCapacityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileCapacityCommandIsNotConstructed)
}
