package handlers

import (
	"formdesk/internal/models"
	"formdesk/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// TodoHandler handles HTTP requests for todos.
type TodoHandler struct {
	service *services.TodoService
	log     zerolog.Logger
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(service *services.TodoService, log zerolog.Logger) *TodoHandler {
	return &TodoHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the todo routes on router.
func (h *TodoHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleGetTodos)
	router.Post("/", h.HandleCreateTodo)
}

// HandleGetTodos lists every todo as {id, name, email, mobileno, status}.
func (h *TodoHandler) HandleGetTodos(c *fiber.Ctx) error {
	todos, err := h.service.GetAllTodos(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("error getting all todos")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve todos",
		})
	}
	return c.JSON(todos)
}

// HandleCreateTodo stores a new todo and answers with its id.
func (h *TodoHandler) HandleCreateTodo(c *fiber.Ctx) error {
	var req models.TodoRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Warn().Err(err).Msg("error parsing todo request body")
		return invalidBody(c, err)
	}

	id, err := h.service.CreateTodo(c.UserContext(), req)
	if err != nil {
		if handled, respErr := validationFailed(c, err); handled {
			return respErr
		}
		h.log.Error().Err(err).Msg("error creating todo")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status_code": fiber.StatusInternalServerError,
			"message":     "Could not create todo",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status_code": fiber.StatusOK,
		"id":          id,
	})
}
