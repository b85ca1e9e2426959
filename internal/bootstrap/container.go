package bootstrap

import (
	"context"
	"log"
	"time"

	"idea-shaper-be/internal/config"
	"idea-shaper-be/internal/controller"
	"idea-shaper-be/internal/pkg/logger"
	"idea-shaper-be/internal/pkg/mailer"
	"idea-shaper-be/internal/repository/memory"
	"idea-shaper-be/internal/repository/unitofwork"
	"idea-shaper-be/internal/service"
	"idea-shaper-be/internal/websocket"
	"idea-shaper-be/pkg/dialog"
	"idea-shaper-be/pkg/llm/factory"

	pktNats "idea-shaper-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	AuthController      controller.IAuthController
	ResearchController  controller.IResearchController
	TemplateController  controller.ITemplateController
	SearchController    controller.ISearchController
	AnalyticsController controller.IAnalyticsController
	MappingController   controller.IMappingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/conversation_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Conversation Engine
	registry := factory.NewRegistry(context.Background(), factory.Credentials{
		GeminiAPIKey:  cfg.Ai.GeminiAPIKey,
		GeminiModel:   cfg.Ai.GeminiModel,
		OpenAIAPIKey:  cfg.Ai.OpenAIAPIKey,
		OpenAIModel:   cfg.Ai.OpenAIModel,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		OllamaModel:   cfg.Ai.OllamaModel,
	})
	log.Printf("[INFO] LLM providers available: %v", registry.Names())

	generationTimeout := time.Duration(cfg.Ai.GenerationTimeout) * time.Second
	engine := dialog.NewStageEngine(cfg.Ai.StageCadence, cfg.Ai.SuggestionsEnabled)
	responder := dialog.NewResponder(registry, engine, generationTimeout)
	dispatcher := dialog.NewDispatcher(registry, generationTimeout)
	synthesizer := dialog.NewSynthesizer(registry, generationTimeout)

	conversationCache := memory.NewConversationCache()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Events.Topic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Events.Topic,
		natsPub,
		wsHub,
		sysLogger,
	)

	analyticsService := service.NewAnalyticsService(uowFactory, rdb, sysLogger)

	chatService := service.NewChatService(
		uowFactory,
		conversationCache,
		responder,
		dispatcher,
		synthesizer,
		registry,
		publisherService,
		analyticsService,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)

	// Registration Worker
	registrationService := service.NewRegistrationService(natsSub, emailService, sysLogger)
	if natsSub != nil {
		go registrationService.Start()
	}

	researchService := service.NewResearchService()
	templateService := service.NewTemplateService()
	searchService := service.NewSearchService(uowFactory)
	mappingService := service.NewMappingService(uowFactory)

	// 5. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		AuthController:      controller.NewAuthController(authService),
		ResearchController:  controller.NewResearchController(researchService),
		TemplateController:  controller.NewTemplateController(templateService),
		SearchController:    controller.NewSearchController(searchService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		MappingController:   controller.NewMappingController(mappingService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
