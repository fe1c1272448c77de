package cmd

import (
	"log/slog"
	"strings"

	httpin "mtaani/internal/adapters/in/http"
	"mtaani/internal/adapters/out/kafka"
	"mtaani/internal/adapters/out/postgres"
	"mtaani/internal/adapters/out/redisgeo"
	"mtaani/internal/core/application/usecases/commands"
	"mtaani/internal/core/application/usecases/queries"
	"mtaani/internal/core/domain/model/delivery"
	"mtaani/internal/core/domain/services"
	"mtaani/internal/core/ports"
	"mtaani/internal/jobs"
	"mtaani/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are built
// on demand; shared infrastructure (database pool, kafka writer, redis
// client, clock) is created once.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	feed       ports.RiderLocationFeed
	codeGen    delivery.CodeGenerator
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from config and the database
// connection.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	systemClock := clock.NewSystemClock()

	publisher := kafka.NewPublisher(
		strings.Split(configs.KafkaHost, ","),
		configs.KafkaDeliveryEventTopic,
		systemClock,
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		feed:       redisgeo.NewFeed(redisClient, configs.RedisGeoKey),
		codeGen:    delivery.NewRandomCodeGenerator(),
		clock:      systemClock,
		logger:     logger,
	}
}

// Close releases shared infrastructure.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.codeGen, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSelectPreferredRidersCommandHandler() commands.SelectPreferredRidersCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectPreferredRidersCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRejectDeliveryCommandHandler() commands.RejectDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectDeliveryCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateReportRiderLocationCommandHandler() commands.ReportRiderLocationCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportRiderLocationCommandHandler(f, c.feed, c.clock, c.logger)
}

func (c *CompositionRoot) CreateSetRiderAvailabilityCommandHandler() commands.SetRiderAvailabilityCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetRiderAvailabilityCommandHandler(f, c.feed, c.logger)
}

func (c *CompositionRoot) CreateResetDailyEarningsCommandHandler() commands.ResetDailyEarningsCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetDailyEarningsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableDeliveriesQueryHandler() (queries.GetAvailableDeliveriesQueryHandler, error) {
	uow := c.uowFactory.Create()
	return queries.NewGetAvailableDeliveriesQueryHandler(
		uow.DeliveryRepository(),
		uow.RiderRepository(),
		services.NewProximityMatcher(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() (queries.GetDeliveryQueryHandler, error) {
	return queries.NewGetDeliveryQueryHandler(c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetDeliveryTrackingQueryHandler() (queries.GetDeliveryTrackingQueryHandler, error) {
	return queries.NewGetDeliveryTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyRidersQueryHandler() (queries.GetNearbyRidersQueryHandler, error) {
	return queries.NewGetNearbyRidersQueryHandler(
		c.feed,
		c.uowFactory.Create().RiderRepository(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetRiderActiveDeliveriesQueryHandler() (queries.GetRiderActiveDeliveriesQueryHandler, error) {
	return queries.NewGetRiderActiveDeliveriesQueryHandler(c.uowFactory.Create().DeliveryRepository())
}

func (c *CompositionRoot) CreateGetRiderEarningsQueryHandler() (queries.GetRiderEarningsQueryHandler, error) {
	return queries.NewGetRiderEarningsQueryHandler(
		c.gormDB,
		c.uowFactory.Create().DeliveryRepository(),
		c.clock,
	)
}

// CreateHTTPServer assembles the echo-facing server from all handlers.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	availableDeliveries, err := c.CreateGetAvailableDeliveriesQueryHandler()
	if err != nil {
		return nil, err
	}
	deliveryDetail, err := c.CreateGetDeliveryQueryHandler()
	if err != nil {
		return nil, err
	}
	tracking, err := c.CreateGetDeliveryTrackingQueryHandler()
	if err != nil {
		return nil, err
	}
	nearbyRiders, err := c.CreateGetNearbyRidersQueryHandler()
	if err != nil {
		return nil, err
	}
	activeDeliveries, err := c.CreateGetRiderActiveDeliveriesQueryHandler()
	if err != nil {
		return nil, err
	}
	earnings, err := c.CreateGetRiderEarningsQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateSelectPreferredRidersCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreateRejectDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateCancelDeliveryCommandHandler(),
		c.CreateRateDeliveryCommandHandler(),
		c.CreateCreateRiderCommandHandler(),
		c.CreateReportRiderLocationCommandHandler(),
		c.CreateSetRiderAvailabilityCommandHandler(),
		availableDeliveries,
		deliveryDetail,
		tracking,
		nearbyRiders,
		activeDeliveries,
		earnings,
	), nil
}

// CreateJobManager assembles the scheduled jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateResetDailyEarningsCommandHandler(), c.logger)
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
