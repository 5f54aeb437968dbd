package handlers

import (
	"tugasku/internal/models"
	"tugasku/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// fetchTasks returns the owner's tasks filtered by completion state.
func (h *Handler) fetchTasks(ownerID int, completed bool) ([]models.Task, error) {
	rows, err := h.DB.Query(
		"SELECT id, name, mapel, deadline, rating, completed, created_at, owner FROM tasks WHERE owner = $1 AND completed = $2 ORDER BY id",
		ownerID, completed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Mapel, &t.Deadline, &t.Rating, &t.Completed, &t.CreatedAt, &t.Owner); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (h *Handler) ListTasks(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	pending, err := h.fetchTasks(userID, false)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot fetch tasks"})
	}
	done, err := h.fetchTasks(userID, true)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching completed tasks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot fetch tasks"})
	}

	return c.JSON(fiber.Map{"tasks": pending, "completed": done})
}

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	type taskRequest struct {
		Name     string  `json:"name" validate:"required"`
		Mapel    string  `json:"mapel"`
		Deadline string  `json:"deadline"`
		Rating   float64 `json:"rating"`
	}

	var req taskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create task", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing fields"})
	}

	task := models.Task{
		Name:     req.Name,
		Mapel:    req.Mapel,
		Deadline: req.Deadline,
		Rating:   req.Rating,
		Owner:    userID,
	}
	err := h.DB.QueryRow(
		"INSERT INTO tasks (owner, name, mapel, deadline, rating) VALUES ($1, $2, $3, $4, $5) RETURNING id, completed, created_at",
		userID, req.Name, req.Mapel, req.Deadline, req.Rating,
	).Scan(&task.ID, &task.Completed, &task.CreatedAt)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot create task"})
	}

	logger.AuditLogger.Info("Task created", zap.Int("taskID", task.ID), zap.Int("userID", userID))
	return c.JSON(fiber.Map{"task": task})
}

// CompleteTask flips a task to completed. The update matches on both id and
// owner; an id that does not exist or belongs to someone else matches zero
// rows and still reports ok, existing clients expect that.
func (h *Handler) CompleteTask(c *fiber.Ctx) error {
	userID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID in complete", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot complete task"})
	}

	_, err = h.DB.Exec(
		"UPDATE tasks SET completed = TRUE WHERE id = $1 AND owner = $2",
		taskID, userID,
	)
	if err != nil {
		logger.ErrorLogger.Error("Error completing task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot complete task"})
	}

	return c.JSON(fiber.Map{"ok": true})
}
