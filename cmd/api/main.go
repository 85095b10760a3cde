package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "shopadmin-backend/internal/adapter/http"
	appmw "shopadmin-backend/internal/adapter/middleware"
	"shopadmin-backend/internal/adapter/repository/mysql"
	"shopadmin-backend/internal/adapter/source"
	"shopadmin-backend/internal/config"
	"shopadmin-backend/internal/infrastructure/cache"
	"shopadmin-backend/internal/infrastructure/db"
	advertUC "shopadmin-backend/internal/usecase/advert"
	notificationUC "shopadmin-backend/internal/usecase/notification"
	"shopadmin-backend/internal/usecase/ordersync"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "shopadmin-backend").Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	adverts := mysql.NewAdvertRepository(gdb)
	orders := mysql.NewOrderRepository(gdb)
	notifications := mysql.NewNotificationRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	commerce := source.NewClient(cfg.SourceBaseURL, cfg.SourceToken)

	advertSvc := advertUC.NewUsecase(adverts, tx)
	orderSvc := ordersync.NewUsecase(orders, commerce)
	notifSvc := notificationUC.NewUsecase(notifications)

	h := httpadp.NewHandler()
	advertH := httpadp.NewAdvertHandler(advertSvc, log)
	orderH := httpadp.NewOrderHandler(orderSvc, log)
	notifH := httpadp.NewNotificationHandler(notifSvc, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	actor := appmw.RequireActor()
	idemp := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	e.GET("/health", h.Health)

	e.POST("/adverts", advertH.CreateAdvert, actor)
	e.GET("/adverts", advertH.ListAdverts)
	e.GET("/adverts/:advert_id", advertH.GetAdvert)
	e.POST("/adverts/:advert_id/approval", advertH.ProcessApproval, actor)
	e.POST("/adverts/:advert_id/cancel", advertH.CancelAdvert, actor)
	e.POST("/adverts/:advert_id/pause", advertH.PauseAdvert, actor)
	e.POST("/adverts/:advert_id/resume", advertH.ResumeAdvert, actor)

	e.POST("/orders/sync", orderH.SyncAll, actor, idemp)
	e.POST("/orders/:order_number/sync", orderH.SyncOrder, actor, idemp)
	e.GET("/orders/summary", orderH.Summary)

	e.GET("/notifications", notifH.ListLogs)
	e.GET("/notifications/summary", notifH.Summary)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
