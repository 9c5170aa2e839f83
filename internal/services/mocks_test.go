package services_test

import (
	"context"

	"formdesk/internal/models"
	"formdesk/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockTodoRepository is a mock implementation of repositories.TodoRepository
type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) Create(ctx context.Context, todo *models.Todo) (string, error) {
	args := m.Called(ctx, todo)
	return args.String(0), args.Error(1)
}

func (m *MockTodoRepository) GetAll(ctx context.Context) ([]models.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

// MockContactFormRepository is a mock implementation of repositories.ContactFormRepository
type MockContactFormRepository struct {
	mock.Mock
}

func (m *MockContactFormRepository) Create(ctx context.Context, form *models.ContactForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockContactFormRepository) GetByID(ctx context.Context, id uint) (*models.ContactForm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactForm), args.Error(1)
}

func (m *MockContactFormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactFormRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactFormRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e rabbitmq.Event) bool { return e.Type == eventType })
}
