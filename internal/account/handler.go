package account

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/customer-accounts", h.createAccount)
	app.Get("/api/v1/customer-accounts", h.listAccounts)
	app.Get("/api/v1/customer-accounts/:id", h.getAccount)
	// support both PUT and PATCH; the payload is sparse either way so PATCH
	// behaviour is satisfied.
	app.Put("/api/v1/customer-accounts/:id", h.updateAccount)
	app.Patch("/api/v1/customer-accounts/:id", h.updateAccount)
	app.Delete("/api/v1/customer-accounts/:id", h.deleteAccount)
}

func (h *Handler) createAccount(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(CreateInput{
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Address:     payload.Address,
		City:        payload.City,
		State:       payload.State,
		Country:     payload.Country,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listAccounts(c *fiber.Ctx) error {
	accounts, err := h.service.List()
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(accounts)
}

func (h *Handler) getAccount(c *fiber.Ctx) error {
	acc, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(acc)
}

func (h *Handler) updateAccount(c *fiber.Ctx) error {
	fields := new(UpdateFields)
	if err := c.BodyParser(fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(c.Params("id"), *fields)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(updated)
}

func (h *Handler) deleteAccount(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// errorResponse maps domain error kinds to HTTP status codes. Anything
// unrecognised is an internal failure and must not leak details.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
