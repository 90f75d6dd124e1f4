package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/repository/unitofwork"
	"ai-chat-workspace-be/internal/service"
	"ai-chat-workspace-be/pkg/avatar"
	"ai-chat-workspace-be/pkg/chatsettings"
	"ai-chat-workspace-be/pkg/database"
	"ai-chat-workspace-be/pkg/storage"
	"ai-chat-workspace-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

// inspect_workspace runs one hydration against the configured database and
// storage and prints what a client mounting the workspace would receive.
func main() {
	workspaceFlag := flag.String("workspace", "", "workspace id to hydrate")
	modelFlag := flag.String("model", "", "model override, as in ?model=")
	flag.Parse()

	workspaceId, err := uuid.Parse(*workspaceFlag)
	if err != nil {
		log.Fatalf("Error: -workspace must be a uuid: %v", err)
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	var objectStore storage.ObjectStore = storage.NewHTTPStore(cfg.Storage.BaseURL, cfg.Storage.ServiceKey, cfg.Storage.Bucket, cfg.Storage.HTTPTimeout)
	if cfg.Storage.Driver == "disk" {
		objectStore = storage.NewDiskStore(cfg.Storage.DiskRoot, cfg.Storage.Bucket)
	}

	stdLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	resolver := avatar.NewResolver(avatar.TiersFor(objectStore, &http.Client{Timeout: cfg.Storage.HTTPTimeout}, cfg.Storage.SignedURLTTL), stdLogger)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	hydration := service.NewHydrationService(unitofwork.NewRepositoryFactory(db), resolver, service.NewEventBus(pubSub, cfg.App.EventTopic), stdLogger, service.HydrationOptions{
		Timeout:           cfg.Hydration.Timeout,
		AvatarConcurrency: cfg.Hydration.AvatarConcurrency,
	})

	state := store.NewWorkspaceState("inspect", uuid.Nil)
	generation := state.BeginSwitch(workspaceId)
	h, committed := hydration.Hydrate(context.Background(), state, generation, workspaceId, chatsettings.Overrides{Model: *modelFlag})

	color.Cyan("🔎 Workspace %s (generation %d, committed=%t)\n", workspaceId, generation, committed)
	if h.Workspace == nil {
		color.Red("Workspace row not found or unreadable; defaults applied")
	} else {
		color.Green("Name: %s  home=%t", h.Workspace.Name, h.Workspace.IsHome)
	}

	color.Yellow("\nChat settings")
	color.White("  model=%s temperature=%.2f context=%d embeddings=%s", h.ChatSettings.Model, h.ChatSettings.Temperature, h.ChatSettings.ContextLength, h.ChatSettings.EmbeddingsProvider)

	color.Yellow("\nCollections")
	counts := []struct {
		name string
		n    int
	}{
		{"assistants", len(h.Assistants)},
		{"chats", len(h.Chats)},
		{"folders", len(h.Folders)},
		{"files", len(h.Files)},
		{"prompts", len(h.Prompts)},
		{"presets", len(h.Presets)},
		{"tools", len(h.Tools)},
		{"models", len(h.Models)},
		{"collections", len(h.Collections)},
	}
	for _, c := range counts {
		color.White("  %-12s %d", c.name, c.n)
	}

	color.Yellow("\nAssistant avatars")
	for _, a := range h.Assistants {
		url := h.AssistantImages[a.Id]
		switch {
		case a.ImagePath == "":
			color.White("  %s: no image", a.Name)
		case url == "":
			color.Red("  %s: %s unresolved", a.Name, a.ImagePath)
		default:
			color.Green("  %s: resolved (%d bytes as data URL)", a.Name, len(url))
		}
	}
}
