// Package api exposes the router as a single serverless handler for platforms
// that invoke a plain http.HandlerFunc instead of running main.
package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"sanjeevika-shop/config"
	_ "sanjeevika-shop/docs"
	"sanjeevika-shop/middleware"
	"sanjeevika-shop/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectDB()
		config.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
