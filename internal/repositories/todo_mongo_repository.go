package repositories

import (
	"context"
	"fmt"

	"formdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTodoRepository is a MongoDB implementation of TodoRepository.
type MongoTodoRepository struct {
	collection *mongo.Collection
}

// NewMongoTodoRepository creates a new instance of MongoTodoRepository.
func NewMongoTodoRepository(collection *mongo.Collection) *MongoTodoRepository {
	return &MongoTodoRepository{
		collection: collection,
	}
}

var activeTodos = bson.M{"is_deleted": bson.M{"$ne": true}}

// Create inserts one todo and returns the generated id as hex text.
func (r *MongoTodoRepository) Create(ctx context.Context, todo *models.Todo) (string, error) {
	res, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return "", fmt.Errorf("failed to insert todo: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	todo.ID = id
	return id.Hex(), nil
}

// GetAll returns every todo that is not soft-deleted.
func (r *MongoTodoRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	cursor, err := r.collection.Find(ctx, activeTodos)
	if err != nil {
		return nil, fmt.Errorf("failed to find todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("failed to decode todos: %w", err)
	}
	return todos, nil
}
