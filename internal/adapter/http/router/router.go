package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tweetsense/sentiment-api/internal/adapter/http/handler"
	"github.com/tweetsense/sentiment-api/internal/adapter/http/middleware"
	"github.com/tweetsense/sentiment-api/internal/domain/service"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/config"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/metrics"
	"github.com/tweetsense/sentiment-api/internal/usecase"
)

// Dependencies are the collaborators built once at startup and shared by all handlers
type Dependencies struct {
	Config     *config.Config
	Classifier service.Classifier
	// ModelHealth checks the model endpoint for /health and /ready
	ModelHealth service.HealthChecker
	// Publisher is nil when tweet publishing is disabled
	Publisher service.Publisher
	// Redis is nil when no broker is configured
	Redis    *redis.Client
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

// Setup creates and configures the Gin router
func Setup(deps *Dependencies) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	if deps.Metrics != nil {
		// outside Recovery so recovered panics are counted as 500s
		router.Use(middleware.Metrics(deps.Metrics))
	}
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.CORS(deps.Config.Server.CORS))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(deps.ModelHealth, deps.Redis)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Initialize usecases
	sentimentUC := usecase.NewSentimentUsecase(deps.Classifier, deps.Metrics, deps.Logger)
	tweetUC := usecase.NewTweetUsecase(deps.Publisher, deps.Config.Queue.Topic, deps.Metrics, deps.Logger)

	// Initialize handlers
	sentimentHandler := handler.NewSentimentHandler(sentimentUC, tweetUC)

	router.POST("/classify", sentimentHandler.Classify)
	router.POST("/fetch-tweet", sentimentHandler.FetchTweet)

	return router
}
