package notifications

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Archive keeps aged-out notices in MongoDB so the relational table stays
// small while history remains queryable.
type Archive struct {
	collection *mongo.Collection
}

// NewArchive creates the archive over a Mongo database.
func NewArchive(db *mongo.Database) *Archive {
	return &Archive{collection: db.Collection("archived_notifications")}
}

// Store copies purged notices into the archive.
func (a *Archive) Store(ctx context.Context, items []Notification) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]any, 0, len(items))
	now := time.Now()
	for _, n := range items {
		docs = append(docs, ArchivedNotification{
			ID:         n.ID,
			UserID:     n.UserID,
			Severity:   n.Severity,
			Message:    n.Message,
			Section:    n.Section,
			Read:       n.Read,
			ReadAt:     n.ReadAt,
			CreatedAt:  n.CreatedAt,
			ArchivedAt: now,
		})
	}
	if _, err := a.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to archive notifications: %w", err)
	}
	return nil
}

// History returns archived notices for a seller, newest first.
func (a *Archive) History(ctx context.Context, userID string, limit int64) ([]ArchivedNotification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := a.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer cursor.Close(ctx)

	var items []ArchivedNotification
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode archive: %w", err)
	}
	return items, nil
}
