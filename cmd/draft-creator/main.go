package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/wardrockay/mail-draft-creator/internal/client"
	"github.com/wardrockay/mail-draft-creator/internal/config"
	"github.com/wardrockay/mail-draft-creator/internal/core/domain"
	"github.com/wardrockay/mail-draft-creator/internal/core/port"
	"github.com/wardrockay/mail-draft-creator/internal/core/service"
	"github.com/wardrockay/mail-draft-creator/internal/infrastructure/amqp"
	"github.com/wardrockay/mail-draft-creator/internal/infrastructure/gmail"
	"github.com/wardrockay/mail-draft-creator/internal/markup"
	"github.com/wardrockay/mail-draft-creator/internal/server"
	"github.com/wardrockay/mail-draft-creator/internal/storage"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg := config.Load()
	if cfg.Environment == "development" {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.ProjectID == "" {
		log.Fatal("GCP_PROJECT_ID is required")
	}
	if cfg.ServiceAccountEmail == "" {
		log.Fatal("GOOGLE_SERVICE_ACCOUNT_EMAIL is required")
	}
	if cfg.DelegatedUser == "" {
		log.Fatal("GMAIL_USER is required")
	}

	ctx := context.Background()
	db, err := storage.NewFirestoreDB(ctx, cfg.ProjectID)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer db.Close()

	collections := storage.Collections{
		Drafts:    cfg.DraftsCollection,
		Followups: cfg.FollowupsCollection,
		Opens:     cfg.OpensCollection,
	}
	drafts := storage.NewDraftsStorage(db, collections)
	opens := storage.NewOpensStorage(db, collections)

	tokens := gmail.NewTokenExchanger()
	mailers := gmail.NewClientPool(cfg.ServiceAccountEmail, cfg.GmailScopes, tokens)

	var scheduler port.FollowupScheduler
	if cfg.AutoFollowupURL != "" {
		scheduler = client.NewFollowupSchedulerClient(cfg.AutoFollowupURL)
	}

	// The event bus is optional; without AMQP_URL the service runs
	// HTTP-only and skips lifecycle events.
	var notifier port.EventNotifier
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to create AMQP client: %v", err)
		}
		defer amqpClient.Close()

		topologyManager := amqp.NewTopologyManager(amqpClient)
		if err := topologyManager.Setup(); err != nil {
			log.Fatalf("Failed to setup AMQP topology: %v", err)
		}
		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))
	}

	renderer := markup.NewRenderer(cfg.TrackingPixelURL)
	draftService := service.NewEmailDraftService(drafts, opens, mailers, scheduler, notifier, renderer, service.Settings{
		DefaultSenderEmail:  cfg.DelegatedUser,
		TrackingEnabled:     cfg.TrackingEnabled,
		AutoFollowupEnabled: cfg.AutoFollowupEnabled,
		DefaultMode:         domain.Mode(cfg.DefaultMode),
	})

	httpServer := server.NewHTTPServer(draftService)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Draft creator service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down draft creator service...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
