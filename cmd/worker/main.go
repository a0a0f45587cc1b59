package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airports/config"
	"github.com/Domenick1991/airports/internal/email"
	"github.com/Domenick1991/airports/internal/kafka"
	"github.com/Domenick1991/airports/internal/pkg/logger"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.NewConsoleLogger(config.LogLevelError).Fatal("load .env: ", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.NewConsoleLogger(config.LogLevelError).Fatal("load config: ", err)
	}

	log, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		logger.NewConsoleLogger(config.LogLevelError).Fatal("create logger: ", err)
	}

	if !cfg.Kafka.Enabled() {
		log.Fatal("kafka brokers are not configured")
	}

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.OrdersTopic
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info("worker consuming ", topic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeOrderEvent(msg.Value)
		if err != nil {
			log.Warn("skip malformed order event at offset ", msg.Offset, ": ", err)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("consumer stopped: ", err)
		return
	}
	log.Info("worker stopped")
}
