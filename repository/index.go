package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventsCollection := db.Collection("events")
	completionsCollection := db.Collection("completions")
	usersCollection := db.Collection("users")

	eventIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "is_recurring", Value: 1},
			},
			Options: options.Index().
				SetName("user_recurring_events"),
		},
	}

	completionIndexes := []mongo.IndexModel{
		// One completion per (event, day). The unique constraint backs up the
		// upsert-by-day-bucket in the service layer under concurrent calls.
		{
			Keys: bson.D{
				{Key: "event_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("event_day_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetName("user_completions_date"),
		},
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true),
		},
	}

	if _, err := eventsCollection.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create events indexes: %w", err)
	}

	if _, err := completionsCollection.Indexes().CreateMany(ctx, completionIndexes); err != nil {
		return fmt.Errorf("failed to create completions indexes: %w", err)
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
