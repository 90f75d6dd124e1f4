package main

import (
	"fmt"
	"log"

	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/model"
	"ai-chat-workspace-be/pkg/database"
)

var updatedAtTables = []string{
	"workspaces", "assistants", "chats", "folders", "files",
	"prompts", "presets", "tools", "models", "collections",
}

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto: %v. Continuing...", err)
	}

	// 4. AutoMigrate All Models
	models := model.All()
	log.Printf("Step 2: Running AutoMigrate for %d Tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes, Functions & Triggers
	log.Println("Step 3: Creating Indexes, Functions and Triggers...")

	postMigrationSQL := []string{
		// A user has at most one home workspace.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_workspaces_user_home ON workspaces (user_id) WHERE is_home;`,

		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,
	}
	for _, table := range updatedAtTables {
		postMigrationSQL = append(postMigrationSQL,
			fmt.Sprintf(`DROP TRIGGER IF EXISTS update_%[1]s_updated_at ON %[1]s;`, table),
			fmt.Sprintf(`CREATE TRIGGER update_%[1]s_updated_at BEFORE UPDATE ON %[1]s FOR EACH ROW EXECUTE FUNCTION set_current_timestamp_updated_at();`, table),
		)
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
