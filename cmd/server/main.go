package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jewebs/sistema-gestao-conteudo/internal/config"
	"github.com/jewebs/sistema-gestao-conteudo/internal/handler"
	"github.com/jewebs/sistema-gestao-conteudo/internal/httpserver"
	"github.com/jewebs/sistema-gestao-conteudo/internal/importer"
	"github.com/jewebs/sistema-gestao-conteudo/internal/mqhandler"
	"github.com/jewebs/sistema-gestao-conteudo/internal/notify"
	"github.com/jewebs/sistema-gestao-conteudo/internal/store"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/logger"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/mq"
	"github.com/jewebs/sistema-gestao-conteudo/pkg/redisclient"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting content dashboard...",
		zap.String("redis_addr", cfg.Redis.Addr),
		zap.String("mq_url", cfg.MQ.URL),
		zap.String("port", cfg.Server.Port),
	)

	rdb := redisclient.New(cfg.Redis)
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("Redis unreachable at startup, task blob falls back to seed data", zap.Error(err))
	}
	pingCancel()

	taskStore := store.New(store.NewRedisBlob(rdb), store.SeedTasks(time.Now()), log)

	// MQ publisher for notification and import events
	log.Info("Initializing MQ publisher...")
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// MQ Consumer for task.created
	log.Info("Initializing MQ consumer for task.created...",
		zap.String("queue", "task.created.q"),
		zap.String("routing_key", "task.created"),
	)
	consumer, err := mq.NewConsumer(cfg.MQ.URL, "task.created.q", "task.created", log)
	if err != nil {
		log.Fatal("Failed to init consumer", zap.Error(err))
	}
	defer consumer.Close()

	taskCreatedHandler := mqhandler.NewTaskCreatedHandler(taskStore, log)
	consumer.SetHandler(taskCreatedHandler.Handle)

	go func() {
		log.Info("Starting task.created consumer...")
		if err := consumer.StartConsuming(); err != nil {
			log.Fatal("Task consumer failed", zap.Error(err))
		}
	}()

	// Notification scanner: hourly re-derivation plus rescan on every mutation
	deduper := notify.NewDeduper(rdb, time.Duration(cfg.Notify.DedupTTLSeconds)*time.Second, log)
	scanner := notify.NewScanner(
		taskStore,
		publisher,
		deduper,
		time.Duration(cfg.Notify.IntervalSeconds)*time.Second,
		log,
	)
	scanner.Start()
	defer scanner.Stop()

	mapper := importer.NewMapper(rand.New(rand.NewSource(time.Now().UnixNano())), log)

	taskHandler := handler.NewTaskHandler(taskStore, log)
	notificationHandler := handler.NewNotificationHandler(scanner, log)
	importExportHandler := handler.NewImportExportHandler(taskStore, mapper, publisher, log)

	router := httpserver.NewRouter(taskHandler, notificationHandler, importExportHandler, log, rdb, consumer)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("content dashboard is fully initialized and running",
		zap.String("http_port", cfg.Server.Port),
		zap.String("mq_queue", "task.created.q"),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down content dashboard gracefully...")

	log.Info("Stopping notification scanner...")
	scanner.Stop()

	log.Info("Stopping MQ consumer...")
	consumer.Stop()

	log.Info("Shutting down HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("content dashboard shutdown complete")
}
