package routes

import (
	"log"
	"os"
	"strconv"
	_ "studioops/docs" // This will be auto-generated
	"studioops/internal/adapter/http/handlers"
	repository2 "studioops/internal/adapter/persistence/repository"
	"studioops/internal/infrastructure/database"
	"studioops/internal/infrastructure/identity"
	"studioops/internal/infrastructure/notifications"
	"studioops/internal/infrastructure/payments"
	"studioops/internal/usecase"
	"studioops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	bookingRepo := repository2.NewBookingRequestDynamoRepository(ddb)
	opportunityRepo := repository2.NewOpportunityDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	accountRepo := repository2.NewClientAccountDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	meetingRepo := repository2.NewMeetingDynamoRepository(ddb)

	identityProvider, err := identity.NewHTTPIdentityProvider()
	if err != nil {
		log.Fatalf("Identity provider not configured: %v", err)
	}
	notifier := notifications.NewWebhookNotifier()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	guardUseCase := usecase.NewIntegrityGuardUseCase(projectRepo)
	pipelineUseCase := usecase.NewPipelineSyncUseCase(opportunityRepo, bookingRepo, meetingRepo, projectRepo)
	conversionUseCase := usecase.NewConversionUseCase(bookingRepo, projectRepo, accountRepo, opportunityRepo, identityProvider)
	lifecycleUseCase := usecase.NewBookingLifecycleUseCase(bookingRepo, pipelineUseCase, conversionUseCase, guardUseCase, identityProvider, notifier)
	aggregatorUseCase := usecase.NewPaymentAggregatorUseCase(paymentRepo, bookingRepo)
	ingestUseCase := usecase.NewPaymentIngestUseCase(paymentRepo, paymentGateway)
	accountUseCase := usecase.NewClientAccountUseCase(accountRepo)

	bookingHandler := handlers.NewBookingHandler(lifecycleUseCase)
	paymentHandler := handlers.NewPaymentHandler(aggregatorUseCase, ingestUseCase)
	meetingHandler := handlers.NewMeetingHandler(pipelineUseCase)
	clientAccountHandler := handlers.NewClientAccountHandler(accountUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStudioRoutes(v1, bookingHandler, paymentHandler, meetingHandler, clientAccountHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
