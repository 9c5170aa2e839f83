package handlers

import (
	"errors"

	"formdesk/internal/models"
	"formdesk/internal/repositories"
	"formdesk/internal/services"
	"formdesk/web"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ContactHandler handles the contact form page, submissions and posts.
type ContactHandler struct {
	service *services.ContactService
	log     zerolog.Logger
}

// NewContactHandler creates a new ContactHandler. The app must be configured
// with web.Views for the form page to render.
func NewContactHandler(service *services.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the contact routes. deleteGuards run before the
// delete handler.
func (h *ContactHandler) RegisterRoutes(router fiber.Router, deleteGuards ...fiber.Handler) {
	router.Get("/", h.HandleForm)
	router.Post("/submit", h.HandleSubmit)
	router.Get("/posts/:post_id", h.HandleGetPost)
	router.Delete("/posts/:post_id", append(deleteGuards, h.HandleDeletePost)...)
}

// HandleForm renders the contact form page.
func (h *ContactHandler) HandleForm(c *fiber.Ctx) error {
	err := c.Render(web.ContactFormView, web.ContactFormPage{Title: "Contact us", Action: "/submit"})
	if err != nil {
		h.log.Error().Err(err).Msg("error rendering contact form")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not render contact form",
		})
	}
	return nil
}

// HandleSubmit stores a submitted form. A reused email is rejected with 400.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req models.ContactFormRequest
	if err := c.BodyParser(&req); err != nil {
		h.log.Warn().Err(err).Msg("error parsing contact form")
		return invalidBody(c, err)
	}

	if _, err := h.service.SubmitForm(c.UserContext(), req); err != nil {
		if handled, respErr := validationFailed(c, err); handled {
			return respErr
		}
		if errors.Is(err, services.ErrEmailAlreadyRegistered) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email already registered",
			})
		}
		h.log.Error().Err(err).Msg("error submitting contact form")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while submitting the form",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Form submitted successfully!",
	})
}

// HandleGetPost returns the full stored record.
func (h *ContactHandler) HandleGetPost(c *fiber.Ctx) error {
	id, ok, err := postID(c)
	if !ok {
		return err
	}

	form, err := h.service.GetForm(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return postNotFound(c)
		}
		h.log.Error().Err(err).Uint("post_id", id).Msg("error reading post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while reading the post",
		})
	}
	return c.JSON(form)
}

// HandleDeletePost removes the record with the given id.
func (h *ContactHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, ok, err := postID(c)
	if !ok {
		return err
	}

	if err := h.service.DeleteForm(c.UserContext(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return postNotFound(c)
		}
		h.log.Error().Err(err).Uint("post_id", id).Msg("error deleting post")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred while deleting the post",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// postID parses :post_id. When ok is false the response has already been
// written and err is what the handler should return.
func postID(c *fiber.Ctx) (uint, bool, error) {
	n, err := c.ParamsInt("post_id")
	if err != nil {
		return 0, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors": []fiber.Map{
				{"field": "post_id", "error": "must be an integer"},
			},
		})
	}
	if n <= 0 {
		return 0, false, postNotFound(c)
	}
	return uint(n), true, nil
}

func postNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Post was not found",
	})
}
