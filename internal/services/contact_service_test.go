package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"formdesk/internal/models"
	"formdesk/internal/repositories"
	"formdesk/internal/services"
	"formdesk/internal/validation"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validContactRequest() models.ContactFormRequest {
	return models.ContactFormRequest{
		Fullname:   "B",
		Email:      "b@x.com",
		Gender:     "F",
		Newsletter: true,
		Comment:    "",
	}
}

func TestContactService_SubmitForm(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	mockPub := new(MockPublisher)
	service := services.NewContactService(mockRepo, mockPub, zerolog.Nop())

	mockRepo.On("ExistsByEmail", mock.Anything, "b@x.com").Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.ContactForm")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.ContactForm).ID = 7
		}).Return(nil).Once()
	mockPub.On("PublishEvent", eventOfType(services.EventContactSubmitted)).Return(nil).Once()

	form, err := service.SubmitForm(context.Background(), validContactRequest())
	assert.NoError(t, err)
	assert.Equal(t, &models.ContactForm{ID: 7, Fullname: "B", Email: "b@x.com", Gender: "F", Newsletter: true}, form)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestContactService_SubmitForm_EmailExists(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("ExistsByEmail", mock.Anything, "b@x.com").Return(true, nil).Once()

	_, err := service.SubmitForm(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, services.ErrEmailAlreadyRegistered)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestContactService_SubmitForm_RaceCaughtByStore(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("ExistsByEmail", mock.Anything, "b@x.com").Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("email b@x.com: %w", repositories.ErrDuplicateEmail)).Once()

	_, err := service.SubmitForm(context.Background(), validContactRequest())
	assert.ErrorIs(t, err, services.ErrEmailAlreadyRegistered)
	mockRepo.AssertExpectations(t)
}

func TestContactService_SubmitForm_StoreError(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("ExistsByEmail", mock.Anything, "b@x.com").Return(false, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()

	_, err := service.SubmitForm(context.Background(), validContactRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailAlreadyRegistered)
	assert.Contains(t, err.Error(), "database error")
}

func TestContactService_SubmitForm_ValidationError(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	req := validContactRequest()
	req.Gender = "much-too-long"

	_, err := service.SubmitForm(context.Background(), req)
	assert.True(t, validation.IsValidationError(err))
	mockRepo.AssertNotCalled(t, "ExistsByEmail", mock.Anything, mock.Anything)
}

func TestContactService_GetForm(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	expected := &models.ContactForm{ID: 1, Fullname: "B", Email: "b@x.com", Gender: "F"}
	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(expected, nil).Once()
	form, err := service.GetForm(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, form)

	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrNotFound).Once()
	form, err = service.GetForm(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, form)
	mockRepo.AssertExpectations(t)
}

func TestContactService_DeleteForm(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	mockPub := new(MockPublisher)
	service := services.NewContactService(mockRepo, mockPub, zerolog.Nop())

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.ContactForm{ID: 1}, nil).Once()
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil).Once()
	mockPub.On("PublishEvent", eventOfType(services.EventContactDeleted)).Return(nil).Once()

	assert.NoError(t, service.DeleteForm(context.Background(), 1))
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestContactService_DeleteForm_NotFound(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrNotFound).Once()

	err := service.DeleteForm(context.Background(), 99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestContactService_DeleteForm_StoreError(t *testing.T) {
	mockRepo := new(MockContactFormRepository)
	service := services.NewContactService(mockRepo, nil, zerolog.Nop())

	mockRepo.On("GetByID", mock.Anything, uint(1)).Return(&models.ContactForm{ID: 1}, nil).Once()
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(errors.New("deadlock")).Once()

	err := service.DeleteForm(context.Background(), 1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrNotFound)
	assert.Contains(t, err.Error(), "deadlock")
}
