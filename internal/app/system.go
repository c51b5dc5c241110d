package app

import (
	"github.com/sirupsen/logrus"
	"github.com/srgjo27/concert_booking/internal/adapter/repository/memory"
	"github.com/srgjo27/concert_booking/internal/core/ports"
	"github.com/srgjo27/concert_booking/internal/core/services"
)

// System holds one independent set of stores plus the engine working on
// them. Callers build it once and pass it around.
type System struct {
	Concerts *memory.ConcertRepository
	Bookings *memory.BookingRepository
	Users    *memory.UserRepository
	Engine   services.BookingEngine
	Catalog  *services.CatalogService
}

type Options struct {
	Strategy string
	Cache    ports.SeatCache
	Events   ports.EventPublisher
	Logger   logrus.FieldLogger
}

func NewSystem(opts Options) (*System, error) {
	concerts := memory.NewConcertRepository()
	bookings := memory.NewBookingRepository()
	users := memory.NewUserRepository()

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	engineOpts := []services.Option{services.WithLogger(logger)}
	if opts.Cache != nil {
		engineOpts = append(engineOpts, services.WithSeatCache(opts.Cache))
	}
	if opts.Events != nil {
		engineOpts = append(engineOpts, services.WithEventPublisher(opts.Events))
	}

	engine, err := services.NewEngine(opts.Strategy, concerts, bookings, users, engineOpts...)
	if err != nil {
		return nil, err
	}

	return &System{
		Concerts: concerts,
		Bookings: bookings,
		Users:    users,
		Engine:   engine,
		Catalog:  services.NewCatalogService(concerts, opts.Cache, logger),
	}, nil
}
