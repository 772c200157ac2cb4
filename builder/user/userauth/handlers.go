package userauth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartresume/smartresume/builder/user"
	"github.com/smartresume/smartresume/builder/user/usersrv"
)

type Handlers struct {
	service *usersrv.Service
}

func NewHandlers(service *usersrv.Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the auth endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware fiber.Handler) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Post("/logout", authMiddleware, h.Logout)
	auth.Get("/me", authMiddleware, h.Me)
}

// Signup registers a new account
// POST /api/v1/auth/signup
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req user.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	response, err := h.service.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// Login authenticates an account
// POST /api/v1/auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req user.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	response, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// Logout acknowledges a sign-out. Tokens are stateless, so the client
// discards its copy; the endpoint exists so clients have a single
// auth surface.
// POST /api/v1/auth/logout
func (h *Handlers) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, ok := GetUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	response, err := h.service.Me(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(response)
}
