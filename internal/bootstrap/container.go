package bootstrap

import (
	"context"
	"log"
	"time"

	"agent-chat-be/internal/config"
	"agent-chat-be/internal/constant"
	"agent-chat-be/internal/controller"
	"agent-chat-be/internal/handler"
	"agent-chat-be/internal/pkg/logger"
	"agent-chat-be/internal/repository/memory"
	"agent-chat-be/internal/repository/unitofwork"
	"agent-chat-be/internal/service"
	"agent-chat-be/internal/websocket"
	"agent-chat-be/pkg/artifact"
	"agent-chat-be/pkg/llm/factory"
	pktNats "agent-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AgentController         controller.IAgentController
	ChatController          controller.IChatController
	ArtifactPanelController controller.IArtifactPanelController
	AdminController         controller.IAdminController

	// Background services, run by cmd/rest
	ConsumerService   service.IConsumerService
	EventAuditService *service.EventAuditService

	// WebSockets
	ArtifactStreamHandler *handler.ArtifactStreamHandler
	WebSocketHub          *websocket.Hub

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	streamLogger := logger.NewIsolatedLogger(cfg.App.StreamLogFilePath)

	// 2. Event bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. LLM provider
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider:          cfg.Ai.LLMProvider,
		Model:             cfg.Ai.LLMModel,
		BaseURL:           cfg.Ai.ProviderBaseURL(),
		APIKey:            cfg.Ai.OpenRouterAPIKey,
		Temperature:       cfg.Ai.Temperature,
		MaxTokens:         cfg.Ai.MaxTokens,
		RequestsPerSecond: cfg.Ai.RequestsPerSecond,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure. NATS and Redis are optional; the app degrades to a
	// single instance without domain events.
	var closers []func()

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	} else {
		closers = append(closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	} else {
		closers = append(closers, natsSub.Close)
	}

	rdb := connectRedis(cfg.App.RedisURL)
	if rdb != nil {
		closers = append(closers, func() { _ = rdb.Close() })
	}

	wsHub := websocket.NewHub(rdb, streamLogger)

	// 5. Services
	agentCache := memory.NewAgentCache()
	panelRepo := memory.NewPanelRepository()
	orchestrator := artifact.NewOrchestrator(nil)

	eventPublisher := service.NewEventPublisher(natsPub, sysLogger)
	publisherService := service.NewPublisherService(constant.TopicArtifactCreated, pubSub)

	agentService := service.NewAgentService(uowFactory, agentCache, eventPublisher)
	chatService := service.NewChatService(
		uowFactory,
		agentService,
		llmProvider,
		orchestrator,
		publisherService,
		eventPublisher,
		sysLogger,
		service.ChatOptions{
			MessageLimit:  cfg.Chat.MessageLimit,
			HistoryWindow: cfg.Chat.HistoryWindow,
		},
	)
	panelService := service.NewArtifactPanelService(uowFactory, panelRepo)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.TopicArtifactCreated,
		panelService,
		wsHub, // Hub implements StreamDelivery
		streamLogger,
		service.StreamOptions{
			ChunkRunes: cfg.Artifact.StreamChunk,
			Interval:   time.Duration(cfg.Artifact.StreamIntervalMs) * time.Millisecond,
		},
	)
	authService := service.NewAuthService(service.AdminCredentials{
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		JwtSecret:    cfg.Auth.JwtSecret,
	})
	auditService := service.NewEventAuditService(natsSub, sysLogger)

	// 6. Controllers
	return &Container{
		AgentController:         controller.NewAgentController(agentService),
		ChatController:          controller.NewChatController(chatService, cfg.Auth.JwtSecret),
		ArtifactPanelController: controller.NewArtifactPanelController(panelService, cfg.Auth.JwtSecret),
		AdminController:         controller.NewAdminController(agentService, authService, sysLogger, cfg.Auth.JwtSecret),

		ConsumerService:   consumerService,
		EventAuditService: auditService,

		ArtifactStreamHandler: handler.NewArtifactStreamHandler(wsHub, cfg.Auth.JwtSecret, streamLogger),
		WebSocketHub:          wsHub,

		Logger:  sysLogger,
		closers: closers,
	}
}

// connectRedis returns nil when Redis is unreachable so the hub runs locally.
func connectRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (websocket fan-out is local only)", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}

// Close releases broker connections and flushes logs.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
	_ = c.Logger.Sync()
}
