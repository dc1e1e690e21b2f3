package cmd

import (
	"log/slog"

	"resty/internal/adapters/out/inmem/menu"
	"resty/internal/adapters/out/inmem/orderrepo"
	"resty/internal/adapters/out/inmem/staffdir"
	"resty/internal/adapters/out/sysclock"
	"resty/internal/core/application/usecases/commands"
	"resty/internal/core/application/usecases/queries"
	"resty/internal/core/ports"
	"resty/internal/jobs"
)

// CompositionRoot wires the in-memory adapters into the application's
// command and query handlers. All handlers built from the same root share
// the same order store and session state.
type CompositionRoot struct {
	orderRepository ports.OrderRepository
	catalog         ports.Catalog
	staffDirectory  ports.StaffDirectory
	clock           ports.Clock
}

func NewCompositionRoot(_ Config) (CompositionRoot, error) {
	directory, err := staffdir.NewDefaultDirectory()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		orderRepository: orderrepo.NewInMemoryOrderRepository(),
		catalog:         menu.NewDefaultCatalog(),
		staffDirectory:  directory,
		clock:           sysclock.NewClock(),
	}, nil
}

func (c *CompositionRoot) Catalog() ports.Catalog {
	return c.catalog
}

func (c *CompositionRoot) StaffDirectory() ports.StaffDirectory {
	return c.staffDirectory
}

func (c *CompositionRoot) Clock() ports.Clock {
	return c.clock
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.orderRepository, c.catalog, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderRepository, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepository, c.clock)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	return commands.NewAssignStaffCommandHandler(c.orderRepository, c.staffDirectory)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateTrackOrdersQueryHandler() queries.TrackOrdersQueryHandler {
	return queries.NewTrackOrdersQueryHandler(c.orderRepository, c.clock)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.orderRepository, c.catalog, c.clock)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDashboardStatsQueryHandler(),
		c.CreateSearchOrdersQueryHandler(),
		c.clock,
		logger,
	)
}
