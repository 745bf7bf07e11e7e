package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Domenick1991/railbooking/config"
	"github.com/Domenick1991/railbooking/internal/email"
	"github.com/Domenick1991/railbooking/internal/kafka"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
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
	if !cfg.Kafka.Enabled() {
		log.Fatalf("worker requires kafka.brokers")
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancelCause(sigCtx)
	defer cancel(nil)

	var wg sync.WaitGroup
	run := func(name string, consume func(context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consume(ctx); err != nil {
				cancel(fmt.Errorf("%s consumer: %w", name, err))
			}
		}()
	}

	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()

		journal := repository.NewJournalRepository(pool)
		if err := journal.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure journal schema: %v", err)
		}

		journalConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID+"-journal", cfg.Kafka.BookingTopic)
		defer journalConsumer.Close()

		run("journal", func(ctx context.Context) error {
			return journalConsumer.Consume(ctx, kafka.BookingEventHandler(func(ctx context.Context, event kafka.BookingEvent) error {
				return journal.Append(ctx, event.JournalEntry())
			}))
		})
	} else {
		log.Printf("database not configured, booking journal disabled")
	}

	emailSender := email.NewSender()
	notifications := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer notifications.Close()

	run("notifications", func(ctx context.Context) error {
		return notifications.Consume(ctx, kafka.BookingEventHandler(emailSender.Send))
	})

	<-ctx.Done()
	log.Printf("shutting down worker")
	wg.Wait()

	if err := context.Cause(ctx); err != nil && sigCtx.Err() == nil {
		log.Printf("worker stopped: %v", err)
		os.Exit(1)
	}
}
