package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/ShopThryfted/Thryfted/internal/api"
	"github.com/ShopThryfted/Thryfted/internal/config"
	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
	"github.com/ShopThryfted/Thryfted/internal/service"
	"github.com/ShopThryfted/Thryfted/internal/session"
	"github.com/ShopThryfted/Thryfted/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB")
				return db, nil
			}
		}
		log.Printf("Retry %d: Failed to connect to DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB after retries: %v", err)
}

func main() {
	cfg := config.Load()

	db, err := connectDB(cfg.DatabaseDSN)
	if err != nil {
		panic(err)
	}

	if err := migrations.AutoMigrateContactMessages(3, db); err != nil {
		log.Fatalf("Failed to migrate contact_messages table: %v", err)
	}
	if err := migrations.AutoMigrateSurveyResponses(3, db); err != nil {
		log.Fatalf("Failed to migrate survey_responses table: %v", err)
	}
	if err := migrations.AutoMigrateCheckoutSessions(3, db); err != nil {
		log.Fatalf("Failed to migrate checkout_sessions table: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	counters := repository.NewRedisCounters(rdb)

	kafkaWriter := config.NewKafkaWriter("checkout-topic")

	catalog := entity.DefaultCatalog()
	sessions := session.NewManager(cfg.SessionSecret)

	messageRepo := repository.NewMessageRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	cartSvc := service.NewCartService(catalog)
	checkoutSvc := service.NewCheckoutService(cartSvc, checkoutRepo, counters, service.NewEventPublisher(kafkaWriter), cfg.Stripe.SecretKey, cfg.BaseURL)
	messageSvc := service.NewMessageService(messageRepo, service.NewMailNotifier(cfg.Mail))
	surveySvc := service.NewSurveyService(surveyRepo)

	handler := api.NewHandler(cfg, catalog, sessions, sessions, cartSvc, checkoutSvc, messageSvc, surveySvc, counters)

	e := echo.New()

	renderer, err := api.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.RealIP(), nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))
	e.Static("/images", "web/images")

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(cfg.Addr))
}
