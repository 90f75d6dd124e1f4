package bootstrap

import (
	"context"
	"log"
	"net/http"

	"ai-chat-workspace-be/internal/config"
	"ai-chat-workspace-be/internal/controller"
	"ai-chat-workspace-be/internal/handler"
	"ai-chat-workspace-be/internal/pkg/logger"
	"ai-chat-workspace-be/internal/pkg/serverutils"
	"ai-chat-workspace-be/internal/repository/memory"
	"ai-chat-workspace-be/internal/repository/unitofwork"
	"ai-chat-workspace-be/internal/service"
	"ai-chat-workspace-be/internal/websocket"
	"ai-chat-workspace-be/pkg/avatar"
	"ai-chat-workspace-be/pkg/gate"
	pktNats "ai-chat-workspace-be/pkg/nats"
	"ai-chat-workspace-be/pkg/sessiontoken"
	"ai-chat-workspace-be/pkg/storage"
	"ai-chat-workspace-be/pkg/turnstile"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Gate
	Gate        *gate.Gate
	GateOptions serverutils.GateOptions

	// Controllers
	WorkspaceController controller.IWorkspaceController
	AuthController      controller.IAuthController
	PublicController    controller.IPublicController

	// WebSockets
	WorkspaceEventHandler *handler.WorkspaceEventHandler
	WebSocketHub          *websocket.Hub

	// Background Services (Exposed for main.go to run)
	EventRelay     service.IEventRelayService
	SessionSync    service.ISessionSyncService
	NatsSubscriber *pktNats.Subscriber

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	if natsPub != nil {
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}
	if natsSub != nil {
		c.NatsSubscriber = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis. Without it revocations and WebSocket fan-out stay local.
	rdb := connectRedis(cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()
	c.WebSocketHub = wsHub

	// Object storage for assistant images
	var objectStore storage.ObjectStore
	switch cfg.Storage.Driver {
	case "disk":
		objectStore = storage.NewDiskStore(cfg.Storage.DiskRoot, cfg.Storage.Bucket)
	default:
		objectStore = storage.NewHTTPStore(cfg.Storage.BaseURL, cfg.Storage.ServiceKey, cfg.Storage.Bucket, cfg.Storage.HTTPTimeout)
	}
	imageClient := &http.Client{Timeout: cfg.Storage.HTTPTimeout}
	resolver := avatar.NewResolver(avatar.TiersFor(objectStore, imageClient, cfg.Storage.SignedURLTTL), sysLogger)

	// 4. Services
	states := memory.NewStateRepository(cfg.Hydration.StateTTL)
	revocations := memory.NewRevocationStore(rdb)
	codec := sessiontoken.NewCodec(cfg.Auth.JWTSecret)
	bus := service.NewEventBus(pubSub, cfg.App.EventTopic)

	sessionService := service.NewSessionService(codec, revocations, states, bus, sysLogger)
	workspaceService := service.NewWorkspaceService(uowFactory)
	hydrationService := service.NewHydrationService(uowFactory, resolver, bus, sysLogger, service.HydrationOptions{
		Timeout:           cfg.Hydration.Timeout,
		AvatarConcurrency: cfg.Hydration.AvatarConcurrency,
	})
	stateService := service.NewWorkspaceStateService(states, workspaceService, hydrationService, sysLogger)

	// A nil *Publisher must not become a non-nil interface.
	var external service.ExternalPublisher
	if natsPub != nil {
		external = natsPub
	}
	c.EventRelay = service.NewEventRelayService(pubSub, cfg.App.EventTopic, wsHub, external, sysLogger)
	c.SessionSync = service.NewSessionSyncService(states, sysLogger)

	// 5. Gate
	locales, err := gate.NewLocaleRouter(cfg.Gate.Locales, cfg.Gate.DefaultLocale)
	if err != nil {
		log.Fatalf("[FATAL] Invalid locale configuration: %v", err)
	}
	publicPaths, err := gate.NewPublicPaths(locales.Supported(), cfg.Gate.ExtraPublicPaths)
	if err != nil {
		log.Fatalf("[FATAL] Invalid public path configuration: %v", err)
	}
	c.Gate = gate.New(locales, publicPaths, sessionService, workspaceService, cfg.Gate.EntryPath, sysLogger)
	c.GateOptions = serverutils.GateOptions{
		SessionCookieName: cfg.Auth.SessionCookieName,
		LocaleCookieName:  cfg.Gate.LocaleCookieName,
	}

	// 6. Controllers
	verifier := turnstile.NewVerifier(cfg.Turnstile.SecretKey, cfg.Turnstile.VerifyURL, cfg.Storage.HTTPTimeout)

	c.WorkspaceController = controller.NewWorkspaceController(stateService, sessionService, cfg.Auth.SessionCookieName)
	c.AuthController = controller.NewAuthController(sessionService, cfg.Auth.SessionCookieName)
	c.PublicController = controller.NewPublicController(verifier, wsHub, sysLogger)
	c.WorkspaceEventHandler = handler.NewWorkspaceEventHandler(sessionService, cfg.Auth.SessionCookieName, wsHub, wsLogger)

	return c
}

func connectRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-process state", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
