package handlers

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Handler holds the dependencies every request handler needs. One instance is
// built at startup and shared; all fields are safe for concurrent use.
type Handler struct {
	DB       *sql.DB
	Sessions *session.Store
	Validate *validator.Validate
}

func New(db *sql.DB, sessions *session.Store) *Handler {
	return &Handler{
		DB:       db,
		Sessions: sessions,
		Validate: validator.New(),
	}
}
