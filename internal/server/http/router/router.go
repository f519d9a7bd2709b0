package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/grubline/vendordash/internal/server/http/handlers"
	"github.com/grubline/vendordash/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware. Sign-in and
// sign-up stay open; every other route sits behind the session guard.
func Setup(facade handlers.DashboardFacade, resolver middleware.SessionResolver, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	dashboardHandler := handlers.NewDashboardHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	itemHandler := handlers.NewItemHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	engine.POST("/signin", authHandler.SignIn)
	engine.POST("/signup", authHandler.SignUp)

	guarded := engine.Group("")
	guarded.Use(middleware.SessionGuard(resolver))
	guarded.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	guarded.POST("/signout", authHandler.SignOut)
	guarded.GET("/dashboard", dashboardHandler.Show)
	guarded.GET("/categories", categoryHandler.List)
	guarded.POST("/categories", categoryHandler.Add)
	guarded.DELETE("/categories/:id", categoryHandler.Delete)
	guarded.GET("/items", itemHandler.List)
	guarded.POST("/items", itemHandler.Add)
	guarded.DELETE("/items/:id", itemHandler.Delete)
	guarded.GET("/orders", orderHandler.List)
	guarded.POST("/orders/:id/ready", orderHandler.Advance)
	guarded.POST("/orders/:id/complete", orderHandler.Complete)

	return engine
}
