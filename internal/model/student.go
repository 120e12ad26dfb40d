package model

import "time"

// Student is created on first login; the ID is the institutional identifier.
type Student struct {
	ID        string    `json:"student_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentLoginRequest is the student login form.
type StudentLoginRequest struct {
	Name      string `form:"name" binding:"required,notblank,max=100"`
	StudentID string `form:"student_id" binding:"required,notblank,max=32"`
}

// AdminLoginRequest is the administrator login form.
type AdminLoginRequest struct {
	Username string `form:"username" binding:"required,max=64"`
	Password string `form:"password" binding:"required,max=128"`
}
