package cmd

import (
	"log/slog"

	memorystore "ordertrack/internal/adapters/out/memory/orderstore"
	postgresstore "ordertrack/internal/adapters/out/postgres/orderstore"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	store  ports.OrderStore
	logger *slog.Logger
}

// NewCompositionRoot selects the order store backend from the configuration.
// A nil gormDB is only acceptable for the in-memory backend.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var store ports.OrderStore
	if config.StoreBackend == "postgres" {
		store = postgresstore.NewGormOrderStore(gormDB)
	} else {
		store = memorystore.NewStore()
	}

	return CompositionRoot{
		store:  store,
		logger: logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store)
}
