package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/srgjo27/concert_booking/internal/adapter/cache"
	"github.com/srgjo27/concert_booking/internal/adapter/events"
	"github.com/srgjo27/concert_booking/internal/adapter/handler"
	"github.com/srgjo27/concert_booking/internal/app"
	"github.com/srgjo27/concert_booking/internal/platform/config"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("server failed")
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.ConfigureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := app.Options{Strategy: cfg.BookingStrategy}

	if cfg.RedisAddr != "" {
		logrus.Infof("Connecting to Redis at %s...", cfg.RedisAddr)

		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		logrus.Info("Redis connected successfully!")

		opts.Cache = cache.NewSeatCache(redisClient, cfg.SeatCacheTTL)
	}

	wmLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, wmLogger)
	defer pubSub.Close()
	opts.Events = events.NewPublisher(pubSub)

	sys, err := app.NewSystem(opts)
	if err != nil {
		return fmt.Errorf("creating system: %w", err)
	}

	demo, err := sys.Seed(time.Now())
	if err != nil {
		return fmt.Errorf("seeding data: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"band_x":   demo.BandX.ID,
		"singer_y": demo.SingerY.ID,
		"alice":    demo.Alice.ID,
		"bob":      demo.Bob.ID,
	}).Info("Seed data loaded")

	bookingHandler := handler.NewBookingHandler(sys.Engine, sys.Catalog, sys.Bookings)
	router := handler.NewRouter(bookingHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, runCtx := errgroup.WithContext(ctx)

	logEvents, err := events.SubscribeLog(runCtx, pubSub, logrus.StandardLogger())
	if err != nil {
		return err
	}
	g.Go(logEvents)

	g.Go(func() error {
		logrus.WithField("strategy", sys.Engine.Strategy()).Infof("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-runCtx.Done()
		logrus.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logrus.Info("Server exiting")
	return nil
}
