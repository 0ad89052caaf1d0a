package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/docs" // This will be auto-generated
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/handlers"
	repository2 "github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/persistence/repository"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/infrastructure/database"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/infrastructure/payments"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase"
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/usecase/interfaces"

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

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	chargeRepo := repository2.NewBoletoChargeDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogRepo, settingsRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, catalogRepo, settingsRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	chargeUseCase := usecase.NewBoletoChargeUseCase(chargeRepo, quoteRepo, paymentGateway)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	chargeHandler := handlers.NewBoletoChargeHandler(chargeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, catalogHandler, quoteHandler, proposalHandler, settingsHandler, chargeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
