package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	nutritionHTTP "nutrition-agent/internal/nutrition/delivery/http"
	"nutrition-agent/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.RateLimit())

	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, response.NotFoundMessage)
	})
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	api.GET("/health", srv.healthCheck)

	nutritionHTTP.RegisterRoutes(api, srv.nutritionHandler)
	srv.l.Infof(ctx, "Nutrition routes registered under /api")
}
