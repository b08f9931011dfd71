package models

import "time"

// Project represents a project owning API specs, members and credentials.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsArchived  bool      `json:"is_archived"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedBy   int64     `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest is the payload for POST /projects.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CreatedBy   int64  `json:"created_by"`
}

// UpdateProjectRequest is the payload for PUT /projects/:id.
// Nil fields keep their stored values.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UpdatedBy   *int64  `json:"updated_by"`
}
