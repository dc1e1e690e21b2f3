package queries

import (
	"errors"

	"resty/internal/pkg/guard"
)

var (
	ErrGetOrderBoardQueryIsNotConstructed = errors.New(
		"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
	)
)

// GetOrderBoardQuery retrieves every order partitioned into the four status
// tabs of the admin board. This is a parameterless query.
type GetOrderBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderBoardQuery creates a query for the grouped board view.
func NewGetOrderBoardQuery() GetOrderBoardQuery {
	return GetOrderBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

// BoardBucket is one status tab on the admin board.
type BoardBucket struct {
	Status string
	Label  string
	Orders []OrderResponse
}

// GetOrderBoardQueryResponse is the grouped board view: the four status
// buckets in fixed pipeline order plus the total order count for the
// "All" tab caption.
type GetOrderBoardQueryResponse struct {
	Buckets    []BoardBucket
	TotalCount int
}
