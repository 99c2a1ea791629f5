package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/expense-reports/internal/clients/cache"
	"max.ks1230/expense-reports/internal/clients/kafka"
	"max.ks1230/expense-reports/internal/clients/tg"
	"max.ks1230/expense-reports/internal/config"
	"max.ks1230/expense-reports/internal/logger"
	"max.ks1230/expense-reports/internal/model/expenses"
	"max.ks1230/expense-reports/internal/model/messages"
	"max.ks1230/expense-reports/internal/model/reports"
	"max.ks1230/expense-reports/internal/model/storage"
	"max.ks1230/expense-reports/internal/tracing"
	"max.ks1230/expense-reports/internal/transport/rest"
)

func main() {
	defer logger.Sync()

	logger.Info("Server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	location := conf.App().Location()
	store := storage.NewInMemStorage(conf.App().MaxReports())

	var analysisCache expenses.AnalysisCache
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		analysisCache = mc
	}
	expenseService := expenses.NewService(store, analysisCache)

	var publisher reports.ReportPublisher
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		publisher = producer
	}

	generator := reports.NewGenerator(store, publisher)
	scheduler := reports.NewScheduler(location)
	if err = reports.ScheduleReports(scheduler, generator, conf.App()); err != nil {
		logger.Fatal("failed to schedule reports:", zap.Error(err))
	}

	server := rest.NewServer(conf.HTTP(), expenseService, location)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return scheduler.Run(ctx)
	})
	group.Go(func() error {
		return server.Run(ctx)
	})

	if conf.Kafka().Enabled() {
		consumer, err := kafka.NewConsumer(conf.Kafka(), expenseService, location)
		if err != nil {
			logger.Fatal("failed to init kafka consumer:", zap.Error(err))
		}
		group.Go(func() error {
			return consumer.StartConsuming(ctx)
		})
	}

	if conf.Telegram().Enabled() {
		client, err := tg.New(conf.Telegram())
		if err != nil {
			logger.Fatal("failed to init telegram client:", zap.Error(err))
		}
		msgService := messages.NewService(client, expenseService, location)
		group.Go(func() error {
			client.ListenUpdates(ctx, msgService)
			return nil
		})
	}

	logger.Info("Server init - end")

	if err = group.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
