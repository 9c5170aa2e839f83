package services

import (
	"context"
	"fmt"
	"time"

	"formdesk/internal/models"
	"formdesk/internal/repositories"
	"formdesk/internal/validation"

	"github.com/rs/zerolog"
)

// TodoService handles business logic related to todos.
type TodoService struct {
	repo      repositories.TodoRepository
	publisher EventPublisher
	log       zerolog.Logger
	now       func() time.Time
}

// NewTodoService creates a new TodoService. publisher may be nil.
func NewTodoService(repo repositories.TodoRepository, publisher EventPublisher, log zerolog.Logger) *TodoService {
	return &TodoService{
		repo:      repo,
		publisher: publisher,
		log:       log.With().Str("service", "todo").Logger(),
		now:       time.Now,
	}
}

// GetAllTodos returns every active todo in its response shape.
func (s *TodoService) GetAllTodos(ctx context.Context) ([]models.TodoResponse, error) {
	todos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return models.NewTodoResponses(todos), nil
}

// CreateTodo validates req, stores it and returns the new id.
func (s *TodoService) CreateTodo(ctx context.Context, req models.TodoRequest) (string, error) {
	if err := validation.Struct(req); err != nil {
		return "", err
	}

	todo := models.NewTodo(req, s.now())
	id, err := s.repo.Create(ctx, todo)
	if err != nil {
		return "", fmt.Errorf("failed to create todo: %w", err)
	}

	publish(s.publisher, s.log, EventTodoCreated, models.NewTodoResponse(*todo))
	return id, nil
}
