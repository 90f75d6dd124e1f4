package main

import (
	"context"
	"encoding/base64"
	"flag"
	"log"
	"os"
	"path/filepath"

	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/repository/unitofwork"
	"ai-chat-workspace-be/pkg/database"
	"ai-chat-workspace-be/pkg/sessiontoken"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// 1x1 transparent PNG written as the demo assistant avatar for the disk store.
const demoAvatarPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func main() {
	userFlag := flag.String("user", "", "user id to seed (defaults to a new id)")
	flag.Parse()

	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	userId := uuid.New()
	if *userFlag != "" {
		if userId, err = uuid.Parse(*userFlag); err != nil {
			log.Fatalf("Error: invalid -user: %v", err)
		}
	}

	color.Cyan("🌱 Seeding demo workspaces for user %s\n", userId)

	ctx := context.Background()
	res, err := seedDemoWorkspaces(ctx, unitofwork.NewUnitOfWork(db), userId)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}

	for kind, n := range res.Counts {
		color.Green("  %-12s %d", kind, n)
	}
	color.Yellow("\nHome workspace:     %s", res.HomeWorkspaceId)
	color.Yellow("Research workspace: %s", res.ResearchWorkspaceId)

	if cfg.Storage.Driver == "disk" {
		if err := writeDemoAvatar(cfg.Storage.DiskRoot, cfg.Storage.Bucket, res.AssistantImagePath); err != nil {
			color.Red("Failed to write demo avatar: %v", err)
		} else {
			color.Green("Wrote demo avatar to %s", filepath.Join(cfg.Storage.DiskRoot, cfg.Storage.Bucket, res.AssistantImagePath))
		}
	}

	token, err := sessiontoken.NewCodec(cfg.Auth.JWTSecret).Sign(userId, uuid.NewString(), cfg.Auth.DevTokenTTL)
	if err != nil {
		color.Red("Failed to mint dev token: %v", err)
		os.Exit(1)
	}
	color.Cyan("\nDev session token (valid %s):", cfg.Auth.DevTokenTTL)
	color.White(token)
	color.Cyan("\nTry: curl -X POST -H 'Authorization: Bearer <token>' %s/api/workspace/v1/%s/mount", cfg.App.BaseURL, res.HomeWorkspaceId)
}

func writeDemoAvatar(root, bucket, path string) error {
	data, err := base64.StdEncoding.DecodeString(demoAvatarPNG)
	if err != nil {
		return err
	}
	full := filepath.Join(root, bucket, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}
