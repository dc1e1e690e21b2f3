package queries

import (
	"time"

	"resty/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// LineItemResponse is the read model of one ordered dish.
type LineItemResponse struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
	Notes     string
}

// OrderResponse is the read model of an order as rendered by the admin board.
// Display metadata comes from the status pipeline so the board never keeps
// its own status switch statements.
type OrderResponse struct {
	ID                 string
	CustomerName       string
	TableNumber        int
	Status             string
	StatusLabel        string
	BadgeColor         string
	NextActionLabel    string
	IsTerminal         bool
	OrderTime          time.Time
	EstimatedReadyTime time.Time
	Items              []LineItemResponse
	Total              decimal.Decimal
	SpecialRequests    string
	AssignedStaff      string
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, LineItemResponse{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
			Notes:     item.Notes(),
		})
	}

	assigned := ""
	if o.AssignedStaff() != nil {
		assigned = o.AssignedStaff().Name()
	}

	return OrderResponse{
		ID:                 o.ID().String(),
		CustomerName:       o.CustomerName(),
		TableNumber:        o.TableNumber(),
		Status:             o.Status().String(),
		StatusLabel:        o.Status().DisplayLabel(),
		BadgeColor:         o.Status().BadgeColor(),
		NextActionLabel:    o.Status().NextActionLabel(),
		IsTerminal:         o.Status().IsTerminal(),
		OrderTime:          o.OrderTime(),
		EstimatedReadyTime: o.EstimatedReadyTime(),
		Items:              items,
		Total:              o.Total(),
		SpecialRequests:    o.SpecialRequests(),
		AssignedStaff:      assigned,
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, newOrderResponse(o))
	}
	return responses
}
