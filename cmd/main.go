package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-order-bot/internal/config"
	"food-order-bot/internal/handler"
	"food-order-bot/internal/repository"
	"food-order-bot/internal/services"
	"food-order-bot/internal/utils"
	"food-order-bot/internal/utils/telegram"
)

func main() {
	// 1. Базовый контекст + менеджер завершения
	baseCtx := context.Background()
	ctx, shutdownManager := utils.NewShutdownManager(baseCtx, 15*time.Second)
	shutdownManager.StartListening()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 2. Инициализация MongoDB (backend-база заказов, только чтение)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database("food_ordering")

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return mongoClient.Disconnect(ctx)
	})

	// 3. Инициализация Redis (канал событий заказов)
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("Invalid Redis URL:", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing Redis connection...")
		return rdb.Close()
	})

	// 4. Телеграм-бот
	bot, err := telegram.NewBot(cfg.BotToken)
	if err != nil {
		log.Fatal("Failed to create Telegram bot:", err)
	}
	log.Printf("Authorized on account %s", bot.Username())

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Stopping Telegram long polling...")
		bot.Stop()
		return nil
	})

	// 5. Инициализация слоев
	orderRepo := repository.NewOrderRepository(db)
	notifier := services.NewNotifierService(bot)
	historyService := services.NewOrderHistoryService(orderRepo)

	notifyHandler := handler.NewNotifyHandler(notifier)
	botHandler := handler.NewBotHandler(bot, historyService, cfg)

	// 6. Подписка на события заказов из Redis
	subscriber := services.NewEventSubscriber(rdb, notifier)
	go subscriber.Start(ctx)

	// 7. HTTP-вход для уведомлений от backend
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.WebsiteURL},
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		api.POST("/notify", notifyHandler.Notify)
	}

	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Notification webhook running on %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Shutting down HTTP server...")
		return server.Shutdown(ctx)
	})

	// 8. Long-poll цикл бота
	go botHandler.Run(ctx, bot.Updates(60))

	// Ожидаем завершения
	select {}
}
