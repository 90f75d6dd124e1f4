package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-chat-workspace-be/internal/bootstrap"
	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/server"
	"ai-chat-workspace-be/internal/tracer"
	"ai-chat-workspace-be/pkg/database"
	"ai-chat-workspace-be/pkg/events"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	// 4. Tracing
	shutdownTracer := tracer.InitTracer(container.Logger)
	defer shutdownTracer(context.Background())

	// 5. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.EventRelay.Start(ctx); err != nil {
		log.Fatalf("Failed to start event relay: %v", err)
	}

	// Sign-outs on other instances drop the state kept here.
	if container.NatsSubscriber != nil {
		if err := container.NatsSubscriber.Subscribe(ctx, events.SessionEnded, "", container.SessionSync.HandleEvent); err != nil {
			log.Printf("[WARN] Failed to subscribe to session events: %v", err)
		}
	}

	// 6. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// 7. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
