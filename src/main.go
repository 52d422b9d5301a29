package main

import (
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"yatrasetu/src/alerts"
	"yatrasetu/src/booking"
	"yatrasetu/src/boot"
	"yatrasetu/src/catalog"
	"yatrasetu/src/chat"
	"yatrasetu/src/config"
	"yatrasetu/src/identity"
	"yatrasetu/src/lib"
	"yatrasetu/src/middlewares"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const apiPrefix = "/api"

func corsMiddleware() gin.HandlerFunc {
	if os.Getenv("API_ENV") == "local" {
		return cors.Default()
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowAllOrigins = true
	return cors.New(cc)
}

// futuredate accepts timestamps in the app's wire format that are not in the
// past. Departure times of new rides must satisfy it.
var futureDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	t, err := time.Parse(config.TIME_PARSE_FORMAT, value)
	if err != nil {
		return false
	}
	return t.After(time.Now())
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("futuredate", futureDateValidatorFunc)
	}
}

// setupRouter wires the constructed services into the route tree. Services
// are built once here and passed down; handlers never reach for globals.
func setupRouter(gdb *gorm.DB, rdb *redis.Client, suggester lib.CitySuggester) *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())

	ids := identity.New(gdb, config.GetJWTSecret())
	cat := catalog.New(gdb)
	engine := booking.NewEngine(gdb)
	sos := alerts.New(gdb)
	responder := chat.NewResponder()
	if suggester == nil {
		suggester = lib.NewCitySuggester(rdb)
	}

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true})
	})

	public := router.Group(apiPrefix)
	authHandlers(public, ids)
	rideHandlers(public, cat)
	assistantHandlers(public, responder, suggester)

	authorized := router.Group(apiPrefix)
	authorized.Use(middlewares.AuthMiddleware(ids))
	rideOwnerHandlers(authorized, cat)
	bookingHandlers(authorized, engine)
	profileHandlers(authorized, gdb)

	emergency := router.Group("")
	emergency.Use(middlewares.AuthMiddleware(ids))
	sosHandlers(emergency, sos)

	return router
}

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

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}
	initLogger()
	registerValidators()

	gdb := boot.InitDb()
	rdb := lib.GetRedisClient()

	cat := catalog.New(gdb)
	boot.InitScheduler(cat)

	router := setupRouter(gdb, rdb, nil)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %s", err.Error())
	}
}
