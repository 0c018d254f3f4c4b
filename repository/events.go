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

type EventsRepo struct {
	MongoCollection *mongo.Collection
}

// Retrieves MongoDB collection for study events
func GetEventsRepo(client *mongo.Client) *EventsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("EVENTS_COLLECTION")
	if collectionName == "" {
		collectionName = "events"
	}
	return &EventsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// Add a new study event (following the model) into the database
func (r *EventsRepo) CreateEvent(ctx context.Context, event *model.StudyEvent) error {
	timer := utils.TrackDBOperation("insert", "events")
	defer timer.ObserveDuration()

	if event.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, event); err != nil {
		utils.TrackError("database", "event_creation_failed")
		return err
	}

	return nil
}

// Retrieves all study events owned by the user
func (r *EventsRepo) GetUserEvents(ctx context.Context, userID string) ([]*model.StudyEvent, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	var events []*model.StudyEvent
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "event_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &events); err != nil {
		utils.TrackError("database", "event_decode_failed")
		return nil, err
	}
	// BSON datetimes decode in UTC; shift fixed dates back to the local zone
	// so calendar-day math upstream sees the stored day.
	for _, event := range events {
		if !event.FixedDate.IsZero() {
			event.FixedDate = event.FixedDate.In(time.Local)
		}
	}
	return events, nil
}

// Retrieves a single event scoped to its owner; returns nil without error
// when no event matches, so callers decide how to surface the miss.
func (r *EventsRepo) GetEventByID(ctx context.Context, userID string, eventID string) (*model.StudyEvent, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     eventID,
		"user_id": userID,
	}

	var event model.StudyEvent
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "event_lookup_failed")
		return nil, err
	}
	if !event.FixedDate.IsZero() {
		event.FixedDate = event.FixedDate.In(time.Local)
	}
	return &event, nil
}

// All encompassing update for a specific event (title, fixed date, recurrence)
func (r *EventsRepo) UpdateEvent(ctx context.Context, eventID string, userID string, updates *model.StudyEvent) error {
	timer := utils.TrackDBOperation("update", "events")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":     eventID,
		"user_id": userID,
	}

	update := bson.M{
		"$set": bson.M{
			"title":        updates.Title,
			"is_recurring": updates.IsRecurring,
			"fixed_date":   updates.FixedDate,
			"recurrence":   updates.Recurrence,
			"days_of_week": updates.DaysOfWeek,
			"exam_id":      updates.ExamID,
			"subject_id":   updates.SubjectID,
			"topic_id":     updates.TopicID,
			"updated_at":   time.Now(),
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "event_update_failed")
		return err
	}

	if result.MatchedCount == 0 {
		utils.TrackError("database", "event_not_found")
		return errors.New("event not found")
	}

	return nil
}

// Counts the number of events for a user for display in the UI
func (r *EventsRepo) CountUserEvents(ctx context.Context, userID string) (int, error) {
	timer := utils.TrackDBOperation("count", "events")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx,
		bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", "event_count_failed")
		return 0, err
	}
	return int(count), nil
}
