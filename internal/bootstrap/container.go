package bootstrap

import (
	"context"
	"log"
	"time"

	"ai-study-assistant-be/internal/config"
	"ai-study-assistant-be/internal/controller"
	"ai-study-assistant-be/internal/pkg/logger"
	"ai-study-assistant-be/internal/repository/contract"
	"ai-study-assistant-be/internal/repository/memory"
	redisrepo "ai-study-assistant-be/internal/repository/redis"
	"ai-study-assistant-be/internal/service"
	"ai-study-assistant-be/pkg/discovery"
	"ai-study-assistant-be/pkg/extract"
	"ai-study-assistant-be/pkg/health"
	"ai-study-assistant-be/pkg/llm"
	"ai-study-assistant-be/pkg/llm/chain"
	"ai-study-assistant-be/pkg/llm/factory"
	"ai-study-assistant-be/pkg/retry"
	"ai-study-assistant-be/pkg/study"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	DocumentController  controller.IDocumentController
	StudyController     controller.IStudyController
	DiscoveryController controller.IDiscoveryController
	SystemController    controller.ISystemController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.Groq,
		cfg.Ai.LLMModel,
		providerBaseURL(cfg),
	)
	if err != nil {
		// AI generation is optional: misconfiguration disables it,
		// fallbacks keep serving.
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. AI generation disabled", err)
		llmProvider = llm.NewDisabledProvider()
	}
	if _, disabled := llmProvider.(*llm.DisabledProvider); disabled {
		log.Printf("[WARN] No AI provider configured, study features run in fallback mode")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	policy := retry.NewPolicy(cfg.Ai.RetryAttempts, time.Duration(cfg.Ai.RetryDelaySecs)*time.Second)
	chainClient := chain.New(llmProvider, cfg.Ai.FallbackModels, policy)
	monitor := health.NewMonitor(llmProvider, cfg.Ai.LLMModel,
		health.WithInterval(time.Duration(cfg.Ai.HealthIntervalSecs)*time.Second))
	agent := study.NewAgent(chainClient, monitor)

	// 4. Session Storage
	var sessionRepo contract.SessionRepository = memory.NewSessionRepository()
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis, keeping in-memory sessions: %v", err)
		} else {
			sessionRepo = redisrepo.NewSessionRepository(rdb)
			log.Printf("[INFO] Using Redis session storage")
		}
	}

	// 5. Extraction
	ocrRunner := extract.NewTesseractRunner()
	if !ocrRunner.Available() {
		log.Printf("[WARN] tesseract/pdftoppm not found, OCR stage disabled")
	}
	extractor := extract.NewExtractor(ocrRunner)

	// 6. Discovery Agents
	runner := discovery.NewRunner()
	papersAgent := discovery.NewPapersAgent(runner)
	videosAgent := discovery.NewVideosAgent(runner, cfg.Keys.YouTube)
	resourcesAgent := discovery.NewResourcesAgent(runner)

	// 7. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	studyService := service.NewStudyService(agent, sessionRepo, sysLogger)
	documentService := service.NewDocumentService(extractor, sessionRepo, publisherService, monitor, cfg.Upload, sysLogger)
	discoveryService := service.NewDiscoveryService(studyService, papersAgent, videosAgent, resourcesAgent, sysLogger)
	systemService := service.NewSystemService(monitor, ocrRunner, cfg, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, studyService, sysLogger)

	// 8. Controllers
	return &Container{
		DocumentController:  controller.NewDocumentController(documentService),
		StudyController:     controller.NewStudyController(studyService),
		DiscoveryController: controller.NewDiscoveryController(discoveryService),
		SystemController:    controller.NewSystemController(systemService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.GroqBaseURL
}
