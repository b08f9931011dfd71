package models

import "time"

// APISpec is a versioned API specification attached to a project.
// SpecContent is persisted as a JSON document string.
type APISpec struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Version     string    `json:"version"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SpecContent string    `json:"spec_content"`
	IsArchived  bool      `json:"is_archived"`
	AccessRole  string    `json:"access_role"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedBy   int64     `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateAPISpecRequest is the payload for POST /api_specs.
// SpecContent accepts a JSON object, an array or a plain string.
type CreateAPISpecRequest struct {
	ProjectID   int64  `json:"project_id" binding:"required"`
	Version     string `json:"version" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SpecContent any    `json:"spec_content"`
	AccessRole  string `json:"access_role"`
	CreatedBy   int64  `json:"created_by"`
}

// UpdateAPISpecRequest is the payload for PUT /api_specs/:id.
// Nil fields keep their stored values.
type UpdateAPISpecRequest struct {
	ProjectID   *int64  `json:"project_id"`
	Version     *string `json:"version"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SpecContent any     `json:"spec_content"`
	AccessRole  *string `json:"access_role"`
	UpdatedBy   *int64  `json:"updated_by"`
}

// APISpecResponse is the API representation of a spec, with the stored
// JSON document decoded back into its content value.
type APISpecResponse struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Version     string    `json:"version"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SpecContent any       `json:"spec_content"`
	IsArchived  bool      `json:"is_archived"`
	AccessRole  string    `json:"access_role"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedBy   int64     `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}
