package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kejastays/internal/config"
	"kejastays/internal/database"
	"kejastays/internal/middleware"
	"kejastays/internal/modules/booking"
	"kejastays/internal/modules/catalog"
	"kejastays/internal/modules/contact"
	"kejastays/internal/modules/payment"
	"kejastays/internal/pkg/response"
	"kejastays/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	response.SetDevMode(cfg.IsDevelopment())

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	blockedDateRepo := repository.NewBlockedDateRepository(db)
	contactRepo := repository.NewContactRepository(db)

	catalogService := catalog.NewService(propertyRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, propertyRepo, blockedDateRepo, log.Logger)
	bookingHandler := booking.NewHandler(bookingService)

	contactService := contact.NewService(contactRepo, log.Logger)
	contactHandler := contact.NewHandler(contactService)

	paymentService := payment.NewService(bookingRepo, log.Logger)
	paymentHandler := payment.NewHandler(paymentService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		catalogHandler.RegisterRoutes(api)
		bookingHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
		paymentHandler.RegisterRoutes(api)
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
