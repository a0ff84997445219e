package commands

import (
	"context"

	"mailroom/internal/core/domain/model/site"
)

// CreateSiteCommandHandler persists new mailroom sites.
type CreateSiteCommandHandler struct {
	store SiteStore
}

// NewCreateSiteCommandHandler creates a handler for site creation.
func NewCreateSiteCommandHandler(store SiteStore) CreateSiteCommandHandler {
	return CreateSiteCommandHandler{
		store: store,
	}
}

// Handle creates the site aggregate and persists it. A single-row write, so
// no compensation is involved.
func (h CreateSiteCommandHandler) Handle(ctx context.Context, cmd CreateSiteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newSite, err := site.NewSite(cmd.SiteID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	return h.store.SiteRepository().Add(ctx, newSite)
}
