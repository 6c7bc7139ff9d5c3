package routes

import (
	"context"
	"log"
	"strconv"

	_ "checkout_verifier/docs"
	"checkout_verifier/internal/adapter/http/handlers"
	"checkout_verifier/internal/adapter/persistence/repository"
	"checkout_verifier/internal/infrastructure/config"
	"checkout_verifier/internal/infrastructure/messaging"
	"checkout_verifier/internal/infrastructure/metrics"
	"checkout_verifier/internal/infrastructure/payments"
	"checkout_verifier/internal/infrastructure/security"
	"checkout_verifier/internal/usecase"
	"checkout_verifier/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Verify  *handlers.VerifyPaymentHandler
	Webhook *handlers.WebhookHandler
	Pix     *handlers.PixHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	h, closeFn, err := BuildHandlers(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer closeFn()

	router := NewRouter(h)
	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts middlewares, operational endpoints and the /v1 API.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h)
	return router
}

// BuildHandlers wires stores, gateway, codecs and publishers from cfg. The
// returned func releases the broker connection, if any.
func BuildHandlers(ctx context.Context, cfg config.Config) (Handlers, func(), error) {
	store, backend := repository.NewPaymentStatusStore(ctx, cfg.Store)

	tokens, err := security.NewHMACTokenCodec(cfg.Security.TokenSecret)
	if err != nil {
		return Handlers{}, nil, err
	}
	verifier := security.NewWebhookSignatureVerifier(cfg.Security.WebhookSecret)

	localPix := payments.NewLocalPixGenerator(cfg.Pix.Key, cfg.Pix.MerchantName, cfg.Pix.MerchantCity)
	gateway := payments.NewGateway(payments.GatewayOptions{
		Provider:               cfg.Gateway.Provider,
		Mock:                   cfg.Gateway.Mock,
		Production:             cfg.Production(),
		InPagamentosURL:        cfg.Gateway.InPagamentosURL,
		InPagamentosPublicKey:  cfg.Gateway.InPagamentosPublicKey,
		InPagamentosSecretKey:  cfg.Gateway.InPagamentosSecretKey,
		MercadoPagoAccessToken: cfg.Gateway.MercadoPagoAccessToken,
		Timeout:                cfg.Gateway.Timeout,
		LocalPix:               localPix,
	})

	events, closeFn := newEventPublisher(cfg.Events)
	recorder := metrics.Recorder{}

	log.Printf("[app] wired env=%s store=%s provider=%s mock=%t webhook_signature=%t",
		cfg.App.Env, backend, cfg.Gateway.Provider, cfg.Gateway.Mock, verifier.Configured())

	verifyUseCase := usecase.NewVerificationUseCase(store, gateway, tokens, verifier, events, recorder)
	webhookUseCase := usecase.NewWebhookUseCase(store, verifier, events, recorder)
	pixUseCase := usecase.NewPixUseCase(gateway, localPix, store)

	return Handlers{
		Verify:  handlers.NewVerifyPaymentHandler(verifyUseCase),
		Webhook: handlers.NewWebhookHandler(webhookUseCase),
		Pix:     handlers.NewPixHandler(pixUseCase),
	}, closeFn, nil
}

func newEventPublisher(cfg config.EventsConfig) (interfaces.IPaymentEventPublisher, func()) {
	if cfg.RabbitMQURL == "" {
		log.Printf("[events] RABBITMQ_URL not set; payment events go to the log only")
		return messaging.LogPublisher{}, func() {}
	}
	pub, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.Exchange, cfg.RoutingKey)
	if err != nil {
		log.Printf("[events] rabbitmq unavailable, using log publisher err=%v", err)
		return messaging.LogPublisher{}, func() {}
	}
	return pub, func() {
		if err := pub.Close(); err != nil {
			log.Printf("[events] close failed err=%v", err)
		}
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(gin.LoggerWithFormatter(accessLogFormat))
	router.Use(metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
