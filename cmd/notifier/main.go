package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/azaria-morake/slotflow/internal/config"
	"github.com/azaria-morake/slotflow/internal/notification"
	"github.com/azaria-morake/slotflow/internal/worker"
	"github.com/wb-go/wbf/logger"
)

func main() {
	cfg := config.MustLoad()

	logg, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"slotflow-notifier",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	mailer := notification.NewMailer(
		cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.Username, cfg.SMTP.Password,
		cfg.SMTP.From, logg,
	)

	consumer := worker.NewConsumer(worker.Config{
		RabbitURL: cfg.Rabbit.URL,
		Exchange:  cfg.Rabbit.Exchange,
		Queue:     cfg.Rabbit.Queue,
		Binding:   cfg.Rabbit.Binding,
		Prefetch:  cfg.Rabbit.Prefetch,
	}, mailer, logg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for {
		if err := consumer.Connect(); err != nil {
			logg.Error("rabbitmq connect failed, retrying in 2s",
				logger.String("error", err.Error()),
			)
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
			}
			continue
		}
		break
	}
	defer consumer.Close()

	if err := consumer.Run(ctx); err != nil {
		logg.Error("consumer stopped with error",
			logger.String("error", err.Error()),
		)
	}
}
