package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/railbooking/api"
	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/bootstrap"
	"github.com/Domenick1991/railbooking/internal/cache"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/Domenick1991/railbooking/internal/service/booking"
	"github.com/Domenick1991/railbooking/internal/service/stations"
	"github.com/Domenick1991/railbooking/internal/service/trains"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := repository.NewMemoryStore()
	if cfg.App.Seed {
		if err := repository.Seed(ctx, store); err != nil {
			log.Fatalf("seed store: %v", err)
		}
	}

	var (
		trainCache   trains.TrainCache
		bookingCache booking.Cache
		producer     booking.Producer
	)

	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.TrainsTTLSeconds)*time.Second)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, trains cache disabled: %v", err)
		} else {
			trainCache, bookingCache = redisCache, redisCache
		}
	}

	if cfg.Kafka.Enabled() {
		kafkaProducer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer kafkaProducer.Close()
		if err := kafkaProducer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unreachable, booking events will be dropped: %v", err)
		}
		producer = kafkaProducer
	}

	services := api.Services{
		Stations: stations.NewStationService(store.Stations),
		Trains:   trains.NewTrainService(store.Trains, trainCache),
		Bookings: booking.NewBookingService(
			store,
			bookingCache,
			producer,
			cfg.Kafka.BookingTopic,
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		),
	}

	if err := bootstrap.Run(ctx, cfg, services); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
