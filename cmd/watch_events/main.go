package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/pkg/events"
	pktNats "ai-chat-workspace-be/pkg/nats"

	"github.com/fatih/color"
)

// watch_events tails the workspace event stream, e.g. to follow hydrations
// while clicking through the app.
func main() {
	typeFlag := flag.String("type", "*", "event type to follow, or * for all")
	durableFlag := flag.String("durable", "", "durable consumer name; empty follows only new events")
	flag.Parse()

	cfg := config.Load()

	sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = sub.Subscribe(ctx, *typeFlag, *durableFlag, func(ctx context.Context, event events.Event) error {
		data, _ := json.Marshal(event.Payload())
		line := color.New(color.FgWhite).SprintFunc()
		switch event.EventType() {
		case events.WorkspaceHydrated:
			line = color.New(color.FgGreen).SprintFunc()
		case events.WorkspaceHydrationDiscarded:
			line = color.New(color.FgYellow).SprintFunc()
		case events.SessionEnded:
			line = color.New(color.FgCyan).SprintFunc()
		}
		log.Println(line(event.Timestamp().Format("15:04:05.000"), " ", event.EventType(), " ", string(data)))
		return nil
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	color.Cyan("👀 Watching %s on %s (Ctrl+C to stop)", pktNats.Subject(*typeFlag), cfg.App.NatsURL)
	<-ctx.Done()
}
