package meetingRepo

import (
	"context"
	"errors"

	"support-assistant/database"
	"support-assistant/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no meeting exists for the given id.
var ErrNotFound = errors.New("meeting not found")

// Repository owns the scheduled-meeting records. The scheduling engine
// is the only writer; swapping the implementation (memory vs Mongo)
// never touches business logic.
type Repository interface {
	Insert(ctx context.Context, meeting models.ScheduledMeeting) error
	GetByID(ctx context.Context, id string) (*models.ScheduledMeeting, error)
	SetStatus(ctx context.Context, id string, status models.MeetingStatus) error
	All(ctx context.Context) ([]models.ScheduledMeeting, error)
}

type mongoMeetingRepo struct {
	coll *mongo.Collection
}

// NewMongoMeetingRepo returns a Repository backed by MongoDB.
func NewMongoMeetingRepo(dbName string) Repository {
	db := database.MongoClient.Database(dbName)
	return &mongoMeetingRepo{
		coll: db.Collection("meetings"),
	}
}
