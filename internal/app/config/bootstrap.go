package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// LiveStop stops the dashboard feed hub.
	LiveStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.LiveStop != nil {
		b.LiveStop()
		log.Println("Successfully stopped live dashboard hub")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if b.RabbitMQ != nil {
		err = b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// Sync on stdout returns EINVAL on some platforms, so its error is only
	// logged.
	if err := b.Logger.Sync(); err != nil {
		log.Printf("Logger sync: %v", err)
	}
	log.Println("Successfully closing Logger")

	return nil
}
