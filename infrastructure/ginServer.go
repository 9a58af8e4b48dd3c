package infrastructure

import (
	"fmt"
	"net/http"
	"os"
	"time"

	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/constants"
	"veriface.io/infrastructure/logger"
	middlewares "veriface.io/infrastructure/middleware"
	webRoutev1 "veriface.io/infrastructure/routes/ginRouter/web/v1"
	server_response "veriface.io/infrastructure/serverResponse"
	startup "veriface.io/infrastructure/startUp"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ginServer struct{}

func (s *ginServer) Start() {
	startup.StartServices()
	defer startup.CleanUpServices()

	server := gin.Default()
	origins := []string{}
	if os.Getenv("GIN_MODE") == "debug" {
		origins = append(origins, "http://localhost:5174")
	} else if os.Getenv("GIN_MODE") == "release" {
		origins = append(origins, "https://veriface.io", "https://www.veriface.io")
	}
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "web-api-key", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	server.Use(cors.New(corsConfig))
	server.MaxMultipartMemory = 15 << 20
	server.Use(middlewares.RequestIDMiddleware())

	v1 := server.Group("/api")
	routerV1 := v1.Group("/v1")
	{
		webRoutev1.VerificationRouter(routerV1)
	}

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!", nil, nil, nil)
	})

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL), nil)
	})

	ginMode := os.Getenv("GIN_MODE")
	port := os.Getenv("PORT")
	if ginMode == "debug" || ginMode == "release" {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", port), logger.LoggerOptions{
			Key:  "supportEmail",
			Data: constants.SUPPORT_EMAIL,
		})
		server.Run(fmt.Sprintf(":%s", port))
	} else {
		panic(fmt.Sprintf("invalid gin mode used - %s", ginMode))
	}
}
