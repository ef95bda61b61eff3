package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsInstructor bool      `json:"is_instructor"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username     string
	Email        string
	IsInstructor bool
}
