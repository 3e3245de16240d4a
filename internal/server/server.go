package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glowmart/admin-service/config"
	"github.com/glowmart/admin-service/internal/auth"
	categoryhandler "github.com/glowmart/admin-service/internal/category/handler"
	contenthandler "github.com/glowmart/admin-service/internal/content/handler"
	dealhandler "github.com/glowmart/admin-service/internal/deal/handler"
	expensehandler "github.com/glowmart/admin-service/internal/expense/handler"
	producthandler "github.com/glowmart/admin-service/internal/product/handler"
	supplierhandler "github.com/glowmart/admin-service/internal/supplier/handler"
	uploadhandler "github.com/glowmart/admin-service/internal/upload/handler"
	userhandler "github.com/glowmart/admin-service/internal/user/handler"
)

// Handlers collects every route group the server exposes.
type Handlers struct {
	User     *userhandler.UserHandler
	Category *categoryhandler.CategoryHandler
	Product  *producthandler.ProductHandler
	Deal     *dealhandler.DealHandler
	Expense  *expensehandler.ExpenseHandler
	Supplier *supplierhandler.SupplierHandler
	Content  *contenthandler.ContentHandler
	Upload   *uploadhandler.UploadHandler
}

// New builds the gin engine and the http.Server around it. Read and write
// timeouts come from config so a stalled client cannot pin a worker.
func New(cfg *config.Config, tm *auth.TokenManager, h *Handlers) *http.Server {
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", h.User.Register)
	v1.POST("/auth/login", h.User.Login)

	authed := v1.Group("", auth.Middleware(tm))
	{
		authed.GET("/auth/me", h.User.Profile)

		authed.POST("/menus", h.Category.CreateMenu)
		authed.GET("/menus", h.Category.ListMenus)
		authed.DELETE("/menus/:id", h.Category.DeleteMenu)

		authed.POST("/categories", h.Category.Create)
		authed.GET("/categories", h.Category.List)
		authed.GET("/categories/:id", h.Category.Get)
		authed.PUT("/categories/:id", h.Category.Update)
		authed.DELETE("/categories/:id", h.Category.Delete)
		authed.POST("/categories/reorder", h.Category.Reorder)

		authed.POST("/products", h.Product.Create)
		authed.GET("/products", h.Product.List)
		authed.GET("/products/:id", h.Product.Get)
		authed.PUT("/products/:id", h.Product.Update)
		authed.DELETE("/products/:id", h.Product.Delete)

		authed.POST("/deals", h.Deal.Create)
		authed.GET("/deals", h.Deal.List)
		authed.GET("/deals/:id", h.Deal.Get)
		authed.PUT("/deals/:id", h.Deal.Update)
		authed.PATCH("/deals/:id/toggle", h.Deal.Toggle)
		authed.DELETE("/deals/:id", h.Deal.Delete)

		authed.POST("/expenses", h.Expense.Create)
		authed.GET("/expenses", h.Expense.List)
		authed.GET("/expenses/analytics", h.Expense.Analytics)
		authed.GET("/expenses/:id", h.Expense.Get)
		authed.PUT("/expenses/:id", h.Expense.Update)
		authed.DELETE("/expenses/:id", h.Expense.Delete)
		authed.POST("/expense-categories", h.Expense.CreateCategory)
		authed.GET("/expense-categories", h.Expense.ListCategories)
		authed.DELETE("/expense-categories/:id", h.Expense.DeleteCategory)

		authed.POST("/suppliers", h.Supplier.Create)
		authed.GET("/suppliers", h.Supplier.List)
		authed.GET("/suppliers/:id", h.Supplier.Get)
		authed.PUT("/suppliers/:id", h.Supplier.Update)
		authed.DELETE("/suppliers/:id", h.Supplier.Delete)

		authed.POST("/banners", h.Content.CreateBanner)
		authed.GET("/banners", h.Content.ListBanners)
		authed.GET("/banners/:id", h.Content.GetBanner)
		authed.PUT("/banners/:id", h.Content.UpdateBanner)
		authed.DELETE("/banners/:id", h.Content.DeleteBanner)

		authed.POST("/posts", h.Content.CreatePost)
		authed.GET("/posts", h.Content.ListPosts)
		authed.GET("/posts/:id", h.Content.GetPost)
		authed.PUT("/posts/:id", h.Content.UpdatePost)
		authed.DELETE("/posts/:id", h.Content.DeletePost)
		authed.POST("/posts/:id/publish", h.Content.PublishPost)
		authed.POST("/posts/:id/unpublish", h.Content.UnpublishPost)

		authed.POST("/uploads", h.Upload.Upload)
	}

	return &http.Server{
		Addr:         cfg.Server.HTTPPort,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}
}
