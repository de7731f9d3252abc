package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-order-bot/internal/models"
)

// OrderRepository — read-only доступ к коллекции заказов backend-базы.
// Бот никогда не пишет в неё: заказы создаёт и обновляет сайт.
type OrderRepository interface {
	GetRecentByUser(ctx context.Context, telegramUserID int64, limit int64) ([]models.Order, error)
}

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{collection: db.Collection("orders")}
}

func (r *orderRepository) GetRecentByUser(ctx context.Context, telegramUserID int64, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"telegram_user_id": telegramUserID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
