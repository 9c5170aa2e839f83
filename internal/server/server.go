// Package server assembles the Fiber applications for the todo and contact
// services from their already-constructed dependencies.
package server

import (
	"formdesk/internal/handlers"
	"formdesk/internal/middleware"
	"formdesk/internal/services"
	"formdesk/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// TodoDeps are the collaborators of the todo service.
type TodoDeps struct {
	Service *services.TodoService
	Log     zerolog.Logger
}

// ContactDeps are the collaborators of the contact service. Auth may be nil,
// in which case deletes are not guarded.
type ContactDeps struct {
	Service   *services.ContactService
	Auth      *services.AuthService
	StaticDir string
	Log       zerolog.Logger
}

func newApp(name string, views fiber.Views, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(log),
		Views:                 views,
	})
	app.Use(requestid.New())
	// The logger wraps recover so recovered panics are logged as 500s.
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Get("/health", handlers.HandleHealth)
	return app
}

// NewTodoApp builds the todo service.
func NewTodoApp(deps TodoDeps) *fiber.App {
	log := deps.Log.With().Str("app", "todo").Logger()
	app := newApp("formdesk-todo", nil, log)

	handlers.NewTodoHandler(deps.Service, log).RegisterRoutes(app)
	return app
}

// NewContactApp builds the contact service.
func NewContactApp(deps ContactDeps) *fiber.App {
	log := deps.Log.With().Str("app", "contact").Logger()
	app := newApp("formdesk-contact", web.Views(), log)

	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
	}

	var deleteGuards []fiber.Handler
	if deps.Auth != nil {
		deleteGuards = append(deleteGuards, middleware.AuthRequired(deps.Auth, log))
	}
	handlers.NewContactHandler(deps.Service, log).RegisterRoutes(app, deleteGuards...)
	return app
}
