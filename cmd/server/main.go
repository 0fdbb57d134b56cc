package main

import (
	"context"
	"log"
	"net/http"

	"mariabakery-be/internal/catalog"
	"mariabakery-be/internal/config"
	"mariabakery-be/internal/db"
	"mariabakery-be/internal/handler"
	"mariabakery-be/internal/logger"
	"mariabakery-be/internal/notify"
	"mariabakery-be/internal/order"
	"mariabakery-be/internal/prefs"
	"mariabakery-be/internal/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer redisClient.Close()

	cat := catalog.Default()

	orderStore := order.NewRepository(database, cfg.DSN())

	feed := order.NewFeed()
	ctx := context.Background()
	go func() {
		if err := feed.Run(ctx, orderStore); err != nil && err != context.Canceled {
			logger.L().Error("order feed stopped", zap.Error(err))
		}
	}()

	var dispatcher notify.Dispatcher = notify.Noop{}
	if cfg.SMTPHost != "" {
		dispatcher = notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	intake := order.NewService(orderStore, feed, cat, dispatcher)

	sessions := session.NewManager()
	prefStore := prefs.NewRedisStore(redisClient)

	h := handler.New(cat, feed, intake, sessions, prefStore)

	log.Printf("Storefront server running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, h.Router()))
}
