package repositories

import (
	"context"

	"formdesk/internal/models"
)

// TodoRepository defines the interface for todo document access.
// GetAll leaves out soft-deleted documents.
type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) (string, error)
	GetAll(ctx context.Context) ([]models.Todo, error)
}
