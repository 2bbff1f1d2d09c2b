package cmd

import (
	"context"
	"log/slog"

	httpadapter "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/memory"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/ports"
	"courier/internal/jobs"
)

// CompositionRoot owns the record store and the long-lived workers. Handlers
// are created on demand and share them.
type CompositionRoot struct {
	cfg    Config
	store  ports.RecordStore
	logger *slog.Logger

	deliveryWorker *jobs.DeliveryWorker
}

func NewCompositionRoot(cfg Config, store ports.RecordStore, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
	c.deliveryWorker = jobs.NewDeliveryWorker(
		c.CreateDeliverShipmentCommandHandler(),
		cfg.DeliveryDelay,
		logger,
	)
	return c
}

// OpenRecordStore builds the store selected by STORE_DRIVER. The returned
// close function releases the database pool, if any.
func OpenRecordStore(ctx context.Context, cfg Config) (ports.RecordStore, func() error, error) {
	if cfg.StoreDriver != StoreDriverPostgres {
		return memory.NewRecordStore(), func() error { return nil }, nil
	}

	db, err := postgres.Open(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if err = postgres.Migrate(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return postgres.NewGormRecordStore(db), sqlDB.Close, nil
}

func (c *CompositionRoot) CreateSubmitShipmentCommandHandler() commands.SubmitShipmentCommandHandler {
	return commands.NewSubmitShipmentCommandHandler(c.deliveryWorker)
}

func (c *CompositionRoot) CreateDeliverShipmentCommandHandler() commands.DeliverShipmentCommandHandler {
	return commands.NewDeliverShipmentCommandHandler(c.store)
}

func (c *CompositionRoot) CreateAddCustomerCommandHandler() commands.AddCustomerCommandHandler {
	return commands.NewAddCustomerCommandHandler(c.store)
}

func (c *CompositionRoot) CreateAddStaffCommandHandler() commands.AddStaffCommandHandler {
	return commands.NewAddStaffCommandHandler(c.store)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListStaffQueryHandler() queries.ListStaffQueryHandler {
	return queries.NewListStaffQueryHandler(c.store)
}

func (c *CompositionRoot) CreateRecordStatsQueryHandler() queries.RecordStatsQueryHandler {
	return queries.NewRecordStatsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateSubmitShipmentCommandHandler(),
		c.CreateAddCustomerCommandHandler(),
		c.CreateAddStaffCommandHandler(),
		c.CreateTrackShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.CreateListCustomersQueryHandler(),
		c.CreateListStaffQueryHandler(),
		c.logger,
	)
}

// CreateJobManager wires the stats job and the delivery worker. Call it once;
// the delivery worker is shared with the submit handler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	statsJob := jobs.NewRecordStatsJob(c.CreateRecordStatsQueryHandler(), c.cfg.StatsSchedule, c.logger)
	return jobs.NewJobManager(statsJob, c.deliveryWorker)
}
