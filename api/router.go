package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devutils/toolbelt/api/handlers"
	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/ratelimit"
	"github.com/devutils/toolbelt/registry"
	"github.com/devutils/toolbelt/services/search"
	"github.com/devutils/toolbelt/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, reg *registry.Registry, engine *search.Engine, limiter *ratelimit.Limiter, rateCfg ratelimit.Config, validator *validation.Validator) {
	router.GET("/health", health())

	// Only the API surface is rate limited; health probes are not.
	apiRoutes := router.Group("/api", requestIDMiddleware(), rateLimitMiddleware(limiter, rateCfg))

	handlers.SetupSearch(apiRoutes, logger, engine, validator)
	handlers.SetupTools(apiRoutes, logger, reg, validator)
	handlers.SetupCategories(apiRoutes, reg)
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())

	return router
}
