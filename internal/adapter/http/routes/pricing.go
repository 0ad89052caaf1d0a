package routes

import (
	"github.com/marcusergarcia/v0-gestor-financeiro-z5-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathQuotes    = "/quotes"
	PathProposals = "/proposals"
	PathSettings  = "/settings"
	PathCharges   = "/charges"
)

func addPricingRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	quoteHandler *handlers.QuoteHandler,
	proposalHandler *handlers.ProposalHandler,
	settingsHandler *handlers.SettingsHandler,
	chargeHandler *handlers.BoletoChargeHandler,
) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListCatalog)
		catalog.POST("", catalogHandler.CreateCatalogItem)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.PATCH("/:id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)
		quotes.GET("/:id/invoice-items", quoteHandler.InvoiceItems)
	}

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.POST("/preview", proposalHandler.PreviewProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:id", proposalHandler.GetProposal)
		proposals.PUT("/:id", proposalHandler.UpdateProposal)
		proposals.PATCH("/:id/approve", proposalHandler.ApproveProposal)
		proposals.PATCH("/:id/reject", proposalHandler.RejectProposal)
		proposals.PATCH("/:id/cancel", proposalHandler.CancelProposal)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.UpdateSettings)
	}

	charges := rg.Group(PathCharges)
	{
		charges.POST("/:quote_id", chargeHandler.CreateChargeByQuoteID)
		charges.GET("/:quote_id", chargeHandler.GetChargeByQuoteID)
	}
}
