package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/zionbm/zion/internal/cli"
	"github.com/zionbm/zion/internal/config"
	"github.com/zionbm/zion/internal/repository"
	"github.com/zionbm/zion/internal/service"
	"github.com/zionbm/zion/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running cli application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	// The menu owns the terminal, so this binary configures no logger.
	type Config struct {
		Postgres config.Postgres
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)

	if err := db.Migrate(pgxPool); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	customerRepository := repository.NewCustomerRepository(dbClient)
	supplierRepository := repository.NewSupplierRepository(dbClient)
	categoryRepository := repository.NewCategoryRepository(dbClient)
	productRepository := repository.NewProductRepository(dbClient)
	orderRepository := repository.NewOrderRepository(dbClient)
	transactionRepository := repository.NewTransactionRepository(dbClient)
	outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)

	app := cli.New(os.Stdin, os.Stdout, cli.Services{
		Dashboard: service.NewDashboardService(customerRepository, productRepository, orderRepository),
		Customer:  service.NewCustomerService(customerRepository, orderRepository),
		Supplier:  service.NewSupplierService(supplierRepository),
		Category:  service.NewCategoryService(categoryRepository),
		Product:   service.NewProductService(productRepository),
		Inventory: service.NewInventoryService(productRepository),
		Order:     service.NewOrderService(dbClient, orderRepository, productRepository, outboxMsgRepository),
		Finance:   service.NewFinanceService(transactionRepository),
	})

	return app.Run(ctx)
}
