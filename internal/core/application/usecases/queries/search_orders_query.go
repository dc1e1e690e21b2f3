package queries

import (
	"errors"

	"resty/internal/core/domain/services"
	"resty/internal/pkg/guard"
)

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery retrieves the orders visible on the admin board for a
// free-text search combined with a status facet. An empty text and the "all"
// facet return every order.
//
// Example:
//
//	query, _ := NewSearchOrdersQuery("jane", "preparing")
//	handler := NewSearchOrdersQueryHandler(repo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("board search failed: %w", err)
//	}
type SearchOrdersQuery struct {
	text  string
	facet string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a board search query. An empty facet defaults
// to "all"; facet validity against the status table is checked on handling.
func NewSearchOrdersQuery(text, facet string) (SearchOrdersQuery, error) {
	if facet == "" {
		facet = services.StatusFilterAll
	}
	return SearchOrdersQuery{
		text:  text,
		facet: facet,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Text returns the free-text search query.
func (q SearchOrdersQuery) Text() string {
	return q.text
}

// Facet returns the status facet ("all" or a status wire value).
func (q SearchOrdersQuery) Facet() string {
	return q.facet
}
