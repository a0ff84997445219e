// Package queries contains the read side of the engine. Query handlers go
// straight to the datastore with raw SQL and return flat read models; they
// never load aggregates and never write.
package queries

import (
	"errors"

	"mailroom/internal/core/domain/model/kernel"
	"mailroom/internal/pkg/guard"
)

var ErrGetSitesQueryIsNotConstructed = errors.New(
	"GetSitesQuery must be created via NewGetSitesQuery constructor",
)

// GetSitesQuery retrieves every site with its denormalized locker counter.
// The counter is returned exactly as stored; no recount happens on the read
// path.
type GetSitesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSitesQuery creates a query to list all sites.
func NewGetSitesQuery() GetSitesQuery {
	return GetSitesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSitesQuery) Validate() error {
	return q.guard.Validate(ErrGetSitesQueryIsNotConstructed)
}

// GetSitesQueryResponse is the site read model.
type GetSitesQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Address      string
	TotalLockers int
}
