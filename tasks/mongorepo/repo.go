package mongorepo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jdelaney/go-task-server/internal/errors"
	"github.com/jdelaney/go-task-server/tasks"
)

const collectionName = "tasks"

var _ tasks.Repo = (*TaskRepo)(nil)

// NowTimeFunc stamps insert timestamps. It can be overridden in tests.
var NowTimeFunc = time.Now

// TaskRepo stores tasks in a single MongoDB collection. The underlying client
// is a shared connection pool opened once at startup; it is never closed per
// request.
type TaskRepo struct {
	collection *mongo.Collection
}

func New(db *mongo.Database) *TaskRepo {
	return &TaskRepo{
		collection: db.Collection(collectionName),
	}
}

// Connect opens the shared client, verifies the deployment with an admin ping
// and returns the application database handle.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping deployment: %w", err)
	}
	log.Info().Msg("Pinged your deployment. You successfully connected to MongoDB!")

	return client, client.Database(dbName), nil
}

// taskDocument is the persisted shape. The ObjectID stays inside this package
// and crosses the Repo boundary as its hex form.
type taskDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Deadline      string             `bson:"deadline"`
	Priority      string             `bson:"priority"`
	Status        tasks.Status       `bson:"status"`
	Email         string             `bson:"email"`
	Timestamp     time.Time          `bson:"timestamp"`
	OngoingDate   *time.Time         `bson:"ongoingDate,omitempty"`
	CompletedDate *time.Time         `bson:"completedDate,omitempty"`
}

func (d taskDocument) toTask() tasks.Task {
	return tasks.Task{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Deadline:      d.Deadline,
		Priority:      d.Priority,
		Status:        d.Status,
		Email:         d.Email,
		Timestamp:     d.Timestamp,
		OngoingDate:   d.OngoingDate,
		CompletedDate: d.CompletedDate,
	}
}

func (r *TaskRepo) ListByOwner(ctx context.Context, email string) ([]tasks.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: tasks.FieldTimestamp, Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{tasks.FieldEmail: email}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	docs := make([]taskDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	owned := make([]tasks.Task, 0, len(docs))
	for _, d := range docs {
		owned = append(owned, d.toTask())
	}
	return owned, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*tasks.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.ErrNotFound
	}

	var doc taskDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	t := doc.toTask()
	return &t, nil
}

func (r *TaskRepo) Insert(ctx context.Context, task tasks.Task) (string, error) {
	doc := taskDocument{
		Title:       task.Title,
		Description: task.Description,
		Deadline:    task.Deadline,
		Priority:    task.Priority,
		Status:      task.Status,
		Email:       task.Email,
		Timestamp:   NowTimeFunc(),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert task: %w", err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return objectID.Hex(), nil
}

func (r *TaskRepo) UpdateFields(ctx context.Context, id string, fields tasks.Fields) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	set := bson.M{}
	for name, value := range fields {
		set[name] = value
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}
	return result.ModifiedCount, nil
}

func (r *TaskRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}
	return result.DeletedCount, nil
}
