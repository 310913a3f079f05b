package httpserver

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storefront-demo/internal/catalog"
	"storefront-demo/internal/domain"
	"storefront-demo/internal/imagesearch"
	cartsvc "storefront-demo/internal/service/cart"
	chatsvc "storefront-demo/internal/service/chat"
	"storefront-demo/internal/session"
)

type sessionService interface {
	Issue(ctx context.Context, clientID string) (*session.Session, error)
	Lookup(token string) (*session.Session, error)
}

type productService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, role domain.Role, in catalog.CreateInput) (*domain.Product, error)
	Search(ctx context.Context, query, category string) ([]domain.Product, error)
	Recommend(ctx context.Context, opts catalog.RecommendOptions) ([]domain.Product, error)
}

type cartService interface {
	Get(ctx context.Context, c cartsvc.Cart) domain.CartState
	Add(ctx context.Context, c cartsvc.Cart, productID string) (domain.CartState, error)
	ChangeQuantity(ctx context.Context, c cartsvc.Cart, lineItemID string, quantity int) (domain.CartState, error)
	Remove(ctx context.Context, c cartsvc.Cart, lineItemID string) (domain.CartState, error)
	Clear(ctx context.Context, c cartsvc.Cart) domain.CartState
	Toggle(ctx context.Context, c cartsvc.Cart) domain.CartState
	Update(ctx context.Context, c cartsvc.Cart, in cartsvc.UpdateInput) (domain.CartState, error)
}

type chatService interface {
	Submit(ctx context.Context, sess *session.Session, text string) (chatsvc.Exchange, error)
	History(ctx context.Context, sess *session.Session) []domain.ChatMessage
	Settings(ctx context.Context, sess *session.Session) (chatsvc.Settings, error)
	SaveSettings(ctx context.Context, sess *session.Session, in chatsvc.SettingsInput) (chatsvc.Settings, error)
}

type imageService interface {
	Search(ctx context.Context, query string, count int) imagesearch.Result
}

// Deps are the services behind the routes. CORSOrigins defaults to any origin.
type Deps struct {
	Sessions    sessionService
	ProductSvc  productService
	CartSvc     cartService
	ChatSvc     chatService
	ImageSvc    imageService
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, checks []ReadinessCheck, deps Deps) (*gin.Engine, error) {
	if deps.Sessions == nil || deps.ProductSvc == nil || deps.CartSvc == nil || deps.ChatSvc == nil || deps.ImageSvc == nil {
		return nil, errors.New("httpserver: missing dependency")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(checks))

	h := &handlers{deps: deps, logger: logger}
	router.POST("/sessions", h.createSession)
	router.POST("/contact", h.submitContact)
	router.POST("/images/search", h.searchImages)
	router.POST("/images/upload", h.uploadImage)

	router.GET("/products", h.listProducts)
	router.GET("/products/search", h.searchProducts)
	router.GET("/products/recommendations", h.recommendProducts)
	router.GET("/products/:id", h.getProduct)

	scoped := router.Group("/", sessionMiddleware(deps.Sessions))
	scoped.POST("/products", h.createProduct)

	scoped.GET("/cart", h.getCart)
	scoped.DELETE("/cart", h.clearCart)
	scoped.POST("/cart/toggle", h.toggleCart)
	scoped.POST("/cart/actions", h.updateCart)
	scoped.POST("/cart/items", h.addCartItem)
	scoped.PUT("/cart/items/:id", h.changeCartItem)
	scoped.DELETE("/cart/items/:id", h.removeCartItem)

	scoped.GET("/chat/messages", h.chatHistory)
	scoped.POST("/chat/messages", h.submitChat)
	scoped.GET("/chat/settings", h.chatSettings)
	scoped.PUT("/chat/settings", h.saveChatSettings)

	scoped.GET("/role", h.getRole)
	scoped.PUT("/role", h.setRole)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", sessionHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
