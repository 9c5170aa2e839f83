package services

import (
	"context"
	"errors"
	"fmt"

	"formdesk/internal/models"
	"formdesk/internal/repositories"
	"formdesk/internal/validation"

	"github.com/rs/zerolog"
)

// ErrEmailAlreadyRegistered is returned when a submission reuses an email.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// ContactService handles business logic for contact form submissions.
type ContactService struct {
	repo      repositories.ContactFormRepository
	publisher EventPublisher
	log       zerolog.Logger
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(repo repositories.ContactFormRepository, publisher EventPublisher, log zerolog.Logger) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		log:       log.With().Str("service", "contact").Logger(),
	}
}

// SubmitForm validates and stores a submission. The email lookup is a fast
// path only: a unique violation reported by the store maps to the same
// ErrEmailAlreadyRegistered.
func (s *ContactService) SubmitForm(ctx context.Context, req models.ContactFormRequest) (*models.ContactForm, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	form := models.NewContactForm(req)
	if err := s.repo.Create(ctx, form); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			s.log.Info().Err(err).Msg("duplicate email rejected by store")
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	publish(s.publisher, s.log, EventContactSubmitted, form)
	return form, nil
}

// GetForm retrieves a submission by id.
func (s *ContactService) GetForm(ctx context.Context, id uint) (*models.ContactForm, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteForm removes a submission by id.
func (s *ContactService) DeleteForm(ctx context.Context, id uint) error {
	form, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, form.ID); err != nil {
		return fmt.Errorf("failed to delete contact form %d: %w", id, err)
	}

	publish(s.publisher, s.log, EventContactDeleted, map[string]uint{"id": form.ID})
	return nil
}
