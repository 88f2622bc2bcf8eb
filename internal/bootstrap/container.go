package bootstrap

import (
	"context"
	"log"

	"idea-copilot-be/internal/config"
	"idea-copilot-be/internal/controller"
	"idea-copilot-be/internal/handler"
	"idea-copilot-be/internal/pkg/logger"
	"idea-copilot-be/internal/repository/memory"
	"idea-copilot-be/internal/repository/unitofwork"
	"idea-copilot-be/internal/service"
	"idea-copilot-be/internal/websocket"
	"idea-copilot-be/pkg/ai/copilot"
	"idea-copilot-be/pkg/ai/oracle"
	"idea-copilot-be/pkg/ai/steward"
	"idea-copilot-be/pkg/grounding"

	pktNats "idea-copilot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WorkspaceController  controller.IWorkspaceController
	SeedController       controller.ISeedController
	KnowledgeController  controller.IKnowledgeController
	InsightController    controller.IInsightController
	ExperimentController controller.IExperimentController
	PrincipleController  controller.IPrincipleController
	CopilotController    controller.ICopilotController

	// Background services (exposed for main.go to run)
	IndexerService service.IIndexerService

	// WebSockets & live feed
	WorkspaceFeedHandler *handler.WorkspaceFeedHandler
	WebSocketHub         *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI oracle
	oracleClient := oracle.NewOpenAIClient(
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.CompletionModel,
		cfg.Ai.ModerationModel,
	)
	if cfg.Ai.OpenAIAPIKey == "" {
		log.Printf("[WARN] OPENAI_API_KEY not set, copilot and indexing calls will fail until configured")
	}

	// 3.5 Infrastructure
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

	// WebSocket hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.EmbedItemTopic)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.App.EmbedItemTopic,
		uowFactory,
		oracleClient,
		sysLogger,
	)

	membershipCache := memory.NewMembershipCache()

	eventService := service.NewEventService(uowFactory, natsPub, sysLogger)
	workspaceService := service.NewWorkspaceService(uowFactory, membershipCache, eventService)
	seedService := service.NewSeedService(uowFactory, workspaceService, eventService)

	knowledgeService := service.NewKnowledgeService(uowFactory, workspaceService, eventService, publisherService, sysLogger)
	insightService := service.NewInsightService(uowFactory, workspaceService, eventService, publisherService, sysLogger)
	experimentService := service.NewExperimentService(uowFactory, workspaceService, eventService, publisherService, sysLogger)
	principleService := service.NewPrincipleService(uowFactory, workspaceService, eventService, publisherService, sysLogger)

	retriever := grounding.NewRetriever(uowFactory)
	answerer := copilot.NewAnswerer(oracleClient, sysLogger)
	stewardEngine := steward.NewSteward(oracleClient, sysLogger)

	copilotService := service.NewCopilotService(
		uowFactory,
		workspaceService,
		eventService,
		oracleClient,
		retriever,
		answerer,
		cfg.Ai.RetrieveLimit,
		sysLogger,
	)
	stewardService := service.NewStewardService(
		uowFactory,
		workspaceService,
		eventService,
		stewardEngine,
		sysLogger,
	)

	// 5. Live feed
	feedHandler := handler.NewWorkspaceFeedHandler(workspaceService, natsSub, wsHub, cfg.Auth.JWTSecret, sysLogger)
	if natsSub != nil {
		if err := feedHandler.StartEventBridge(); err != nil {
			log.Printf("[WARN] Failed to start workspace event bridge: %v", err)
		}
	}

	// 6. Controllers
	return &Container{
		WorkspaceController:  controller.NewWorkspaceController(workspaceService),
		SeedController:       controller.NewSeedController(seedService),
		KnowledgeController:  controller.NewKnowledgeController(knowledgeService),
		InsightController:    controller.NewInsightController(insightService),
		ExperimentController: controller.NewExperimentController(experimentService),
		PrincipleController:  controller.NewPrincipleController(principleService),
		CopilotController:    controller.NewCopilotController(copilotService, stewardService),

		IndexerService: indexerService,

		WorkspaceFeedHandler: feedHandler,
		WebSocketHub:         wsHub,
	}
}
