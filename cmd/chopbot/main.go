package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/demilade/chopbot/internal/api"
	"github.com/demilade/chopbot/internal/chat"
	"github.com/demilade/chopbot/internal/config"
	"github.com/demilade/chopbot/internal/payment"
	"github.com/demilade/chopbot/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Pick the payment gateway for the environment
	var gateway payment.Gateway
	if cfg.IsDevelopment() {
		logrus.Info("Running in DEVELOPMENT mode - using MOCK payment service")
		gateway = payment.NewMock()
	} else {
		logrus.Info("Running in PRODUCTION mode - using REAL Paystack API")
		gateway = payment.NewPaystack(cfg.PaystackSecretKey, cfg.BaseURL+"/api/payment/callback")
	}

	store := session.NewStore()
	engine := chat.NewEngine(store, gateway)
	server := api.New(cfg, engine)

	// Start API server
	go func() {
		if err := server.Start(); err != nil {
			logrus.Fatalf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logrus.Info("Shutting down...")
}
