package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path"

	"shareit/src/boot"
	"shareit/src/common"
	"shareit/src/middlewares"
	"shareit/src/models"
	"shareit/src/types"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func initLogger() {
	cwd, _ := os.Getwd()
	serverLogs := path.Join(cwd, "logs", "server.log")
	apiLogs := path.Join(cwd, "logs", "api.log")
	gin.ForceConsoleColor()

	f, _ := os.Create(apiLogs)
	gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.Use(middlewares.Metrics)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func mountRoutes(router *gin.Engine) {
	users := router.Group("")
	userHandlers(users)

	authorized := router.Group("")
	authorized.Use(middlewares.Identity)
	itemHandlers(authorized)
	bookingHandlers(authorized)
	requestHandlers(authorized)
}

func abortWithError(ctx *gin.Context, err error) {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		ctx.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr.Msg})
		return
	}
	log.Printf("Could not complete request: %s\n", err.Error())
	ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func toBookingResponses(bookings []models.Booking) []*types.APIResponseBooking {
	res := make([]*types.APIResponseBooking, 0, len(bookings))
	for i := range bookings {
		res = append(res, common.ToBookingResponse(&bookings[i]))
	}
	return res
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()

	boot.InitDb()

	router := setupRouter()
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "PATCH", "DELETE")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", middlewares.UserIDHeader)
		cc.AllowAllOrigins = true
		router.Use(cors.New(cc))
	}
	mountRoutes(router)

	if err := router.Run(":9090"); err != nil {
		log.Fatalf("Failed to start server: %s", err)
	}
}
