package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"shareit/src/middlewares"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// futuredate Accepts present-or-future timestamps, rejects anything already past.
var futuredate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !date.Before(time.Now())
}

func initLogger() {
	cwd, _ := os.Getwd()
	gatewayLogs := path.Join(cwd, "logs", "gateway.log")
	gin.ForceConsoleColor()

	gin.DefaultWriter = io.MultiWriter(os.Stdout)
	log.SetOutput(&lumberjack.Logger{
		Filename:   gatewayLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
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

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("futuredate", futuredate)
	}

	router := setupRouter()
	router.Use(cors.Default())
	mountRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start gateway: %s", err)
	}
}
