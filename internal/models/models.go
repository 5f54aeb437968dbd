package models

import "time"

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a single homework entry. Mapel is the school subject; Deadline is
// stored as the client sent it, no format is enforced.
type Task struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Mapel     string    `json:"mapel"`
	Deadline  string    `json:"deadline"`
	Rating    float64   `json:"rating"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     int       `json:"owner"`
}
