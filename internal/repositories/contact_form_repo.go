package repositories

import (
	"context"

	"formdesk/internal/models"
)

// ContactFormRepository defines the interface for contact form data access.
type ContactFormRepository interface {
	Create(ctx context.Context, form *models.ContactForm) error
	GetByID(ctx context.Context, id uint) (*models.ContactForm, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
