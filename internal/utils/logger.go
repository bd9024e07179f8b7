package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinhyan/midland-library/internal/models"
)

type Logger struct {
	Collection *mongo.Collection
}

func (l *Logger) Log(ctx context.Context, entity, action, cardNum string, data any) error {
	entry := models.AuditLog{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		CardNum:   cardNum,
		Data:      data,
	}
	_, err := l.Collection.InsertOne(ctx, entry)
	return err
}
