package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"studytrack/model"
	"studytrack/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CompletionsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for event completions
func GetCompletionsRepo(client *mongo.Client) *CompletionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("COMPLETIONS_COLLECTION")
	if collectionName == "" {
		collectionName = "completions"
	}
	return &CompletionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// GetCompletionsInRange loads every completion for the given events whose date
// falls inside [start, end] (whole days, both ends inclusive) in one query.
// The schedule service batches all candidate event IDs here to avoid one
// lookup per occurrence.
func (r *CompletionsRepo) GetCompletionsInRange(ctx context.Context, eventIDs []string, start, end time.Time) ([]*model.EventCompletion, error) {
	timer := utils.TrackDBOperation("find", "completions")
	defer timer.ObserveDuration()

	if len(eventIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{
		"event_id": bson.M{"$in": eventIDs},
		"date": bson.M{
			"$gte": start,
			"$lt":  end.AddDate(0, 0, 1),
		},
	}

	var records []*model.EventCompletion
	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		utils.TrackError("database", "completion_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &records); err != nil {
		utils.TrackError("database", "completion_decode_failed")
		return nil, err
	}
	// BSON datetimes decode in UTC; shift back to the local zone so the day a
	// record names survives the round trip through the store.
	for _, record := range records {
		record.Date = record.Date.In(time.Local)
	}
	return records, nil
}

// FindForDay fetches the single completion inside the [day, day+24h) bucket,
// or nil when the day was never marked.
func (r *CompletionsRepo) FindForDay(ctx context.Context, eventID string, day time.Time) (*model.EventCompletion, error) {
	timer := utils.TrackDBOperation("find", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"event_id": eventID,
		"date": bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		},
	}

	var record model.EventCompletion
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "completion_lookup_failed")
		return nil, err
	}
	record.Date = record.Date.In(time.Local)
	return &record, nil
}

// CreateCompletion inserts a new completion row. The unique (event_id, date)
// index rejects a second row for the same day; callers fall back to updating
// the surviving row when that happens.
func (r *CompletionsRepo) CreateCompletion(ctx context.Context, record *model.EventCompletion) error {
	timer := utils.TrackDBOperation("insert", "completions")
	defer timer.ObserveDuration()

	if record.EventID == "" || record.UserID == "" {
		utils.TrackError("database", "invalid_completion_data")
		return errors.New("event ID and user ID are required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, record); err != nil {
		utils.TrackError("database", "completion_creation_failed")
		return err
	}

	return nil
}

// SetCompleted marks an existing completion row as done.
func (r *CompletionsRepo) SetCompleted(ctx context.Context, completionID string) error {
	timer := utils.TrackDBOperation("update", "completions")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": completionID}
	update := bson.M{
		"$set": bson.M{
			"completed":  true,
			"updated_at": time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "completion_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "completion_not_found")
		return errors.New("completion not found")
	}

	return nil
}
