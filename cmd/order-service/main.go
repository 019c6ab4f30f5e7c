package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/novmah62/ecommerce-app-apis/internal/clients"
	"github.com/novmah62/ecommerce-app-apis/internal/config"
	"github.com/novmah62/ecommerce-app-apis/internal/db"
	"github.com/novmah62/ecommerce-app-apis/internal/events"
	httpapi "github.com/novmah62/ecommerce-app-apis/internal/http"
	"github.com/novmah62/ecommerce-app-apis/internal/order"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[order-service] ", log.LstdFlags|log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	if err := db.Migrate(cfg.DatabaseDSN); err != nil {
		logger.Fatalf("migrate: %v", err)
	}
	pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer pool.Close()
	orderRepo := order.NewPostgresRepository(pool)

	// RabbitMQ
	rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
	defer rabbitConn.Close()

	publisher, err := events.NewPublisher(rabbitConn)
	if err != nil {
		logger.Fatalf("init publisher: %v", err)
	}
	defer publisher.Close()

	// Collaborator gateway; one shared client with the upstream timeout.
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	gateway := clients.NewGateway(clients.URLs{
		Buyer:   cfg.BuyerURL,
		Address: cfg.AddressURL,
		Product: cfg.ProductURL,
		Payment: cfg.PaymentURL,
		Cart:    cfg.CartURL,
	}, httpClient)

	svc := order.NewService(orderRepo, gateway, publisher, logger)

	// HTTP
	mux := httpapi.NewRouter(svc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
	}

	go func() {
		logger.Printf("order-service listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
