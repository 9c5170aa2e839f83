package repositories

import (
	"context"
	"sort"
	"sync"

	"formdesk/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTodoRepository is an in-memory implementation of TodoRepository.
type MockTodoRepository struct {
	todos map[primitive.ObjectID]models.Todo
	mu    sync.RWMutex
}

// NewMockTodoRepository creates a new instance of MockTodoRepository.
func NewMockTodoRepository() *MockTodoRepository {
	return &MockTodoRepository{
		todos: make(map[primitive.ObjectID]models.Todo),
	}
}

// Create stores a copy of todo under a fresh object id.
func (r *MockTodoRepository) Create(_ context.Context, todo *models.Todo) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo.ID = primitive.NewObjectID()
	r.todos[todo.ID] = *todo
	return todo.ID.Hex(), nil
}

// GetAll returns the todos that are not soft-deleted, oldest first.
func (r *MockTodoRepository) GetAll(_ context.Context) ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todoList := make([]models.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		if todo.IsDeleted {
			continue
		}
		todoList = append(todoList, todo)
	}
	sort.Slice(todoList, func(i, j int) bool {
		return todoList[i].ID.Hex() < todoList[j].ID.Hex()
	})
	return todoList, nil
}
