package routes

import (
	"net/http"

	_ "wrapcommand/docs" // swagger spec registration
	"wrapcommand/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathCreateQuoteFromChat = "/create-quote-from-chat"
	PathCreateQuoteDraft    = "/create-quote-draft"
	PathExecuteQuoteDraft   = "/execute-quote-draft"
	PathRejectQuoteDraft    = "/reject-quote-draft"
	PathQuickQuote          = "/quick-quote"
	PathQuotes              = "/quotes"
	PathQuoteDrafts         = "/quote-drafts"
	PathConversations       = "/conversations"
)

// Handlers groups what the router mounts.
type Handlers struct {
	Quote  *handlers.QuoteHandler
	Draft  *handlers.QuoteDraftHandler
	Events *handlers.EventHandler
}

// NewRouter builds the gin engine. Quote routes are mounted under /v1 and at
// the root, where the old function URLs lived.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addPingRoutes(&router.RouterGroup)
	addQuoteRoutes(&router.RouterGroup, h)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addQuoteRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathCreateQuoteFromChat, h.Quote.CreateFromChat)
	rg.POST(PathQuickQuote, h.Quote.QuickQuote)
	rg.GET(PathQuotes+"/:id", h.Quote.GetQuote)

	rg.POST(PathCreateQuoteDraft, h.Draft.CreateDraft)
	rg.POST(PathExecuteQuoteDraft, h.Draft.ExecuteDraft)
	rg.POST(PathRejectQuoteDraft, h.Draft.RejectDraft)
	rg.GET(PathQuoteDrafts+"/:id", h.Draft.GetDraft)

	rg.GET(PathConversations+"/:id/events", h.Events.ListByConversation)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(CORS())
}
