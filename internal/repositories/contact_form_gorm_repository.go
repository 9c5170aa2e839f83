package repositories

import (
	"context"
	"errors"
	"fmt"

	"formdesk/internal/models"
	"formdesk/internal/sqlerr"

	"gorm.io/gorm"
)

// GORMContactFormRepository is a GORM implementation of ContactFormRepository.
// Writes run inside a transaction that is rolled back on any error.
type GORMContactFormRepository struct {
	db *gorm.DB
}

// NewGORMContactFormRepository creates a new instance of GORMContactFormRepository.
func NewGORMContactFormRepository(db *gorm.DB) *GORMContactFormRepository {
	return &GORMContactFormRepository{
		db: db,
	}
}

// Create inserts a new row. A unique violation on email yields ErrDuplicateEmail.
func (r *GORMContactFormRepository) Create(ctx context.Context, form *models.ContactForm) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(form).Error
	})
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			if name := sqlerr.ConstraintName(err); name != "" {
				return fmt.Errorf("email %s violates %s: %w", form.Email, name, ErrDuplicateEmail)
			}
			return fmt.Errorf("email %s: %w", form.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to create contact form: %w", err)
	}
	return nil
}

// GetByID retrieves a single contact form by its primary key.
func (r *GORMContactFormRepository) GetByID(ctx context.Context, id uint) (*models.ContactForm, error) {
	var form models.ContactForm
	if err := r.db.WithContext(ctx).First(&form, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact form with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact form by ID %d: %w", id, err)
	}
	return &form, nil
}

// ExistsByEmail reports whether a row with email is already stored.
func (r *GORMContactFormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContactForm{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	return count > 0, nil
}

// Delete removes the row with id.
func (r *GORMContactFormRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ContactForm{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("contact form with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete contact form: %w", err)
	}
	return nil
}

// Count returns the number of stored contact forms.
func (r *GORMContactFormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContactForm{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact forms: %w", err)
	}
	return count, nil
}
