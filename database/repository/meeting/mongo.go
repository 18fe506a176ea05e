package meetingRepo

import (
	"context"
	"errors"

	"support-assistant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert stores a new meeting record.
func (r *mongoMeetingRepo) Insert(ctx context.Context, meeting models.ScheduledMeeting) error {
	_, err := r.coll.InsertOne(ctx, meeting)
	return err
}

// GetByID returns a meeting by its ID.
func (r *mongoMeetingRepo) GetByID(ctx context.Context, id string) (*models.ScheduledMeeting, error) {
	var meeting models.ScheduledMeeting
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&meeting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// SetStatus updates the lifecycle state of a meeting.
func (r *mongoMeetingRepo) SetStatus(ctx context.Context, id string, status models.MeetingStatus) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// All fetches every meeting record.
func (r *mongoMeetingRepo) All(ctx context.Context) ([]models.ScheduledMeeting, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.ScheduledMeeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
