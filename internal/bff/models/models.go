// Package models holds the wire and storage types of the streetlight BFF.
package models

import "time"

// Season selects which schedule window applies.
type Season string

const (
	SeasonSummer Season = "SUMMER"
	SeasonWinter Season = "WINTER"
)

// User roles accepted at registration.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// Spec access roles.
const (
	AccessPublic     = "public"
	AccessPrivate    = "private"
	AccessRestricted = "restricted"
)

// User is a registered BFF account. PasswordHash never leaves the process.
type User struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	FullName     string `json:"full_name,omitempty"`
	Disabled     bool   `json:"disabled"`
	PasswordHash string `json:"-"`
}

// Project is a registered streetlight project, keyed by a generated UUID.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       User      `json:"owner"`
}

// APISpec is an API specification attached to a BFF project. SpecContent is
// stored as a JSON document string.
type APISpec struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Version     string    `json:"version"`
	AccessRole  string    `json:"access_role"`
	SpecContent string    `json:"spec_content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedBy   string    `json:"created_by"`
	UpdatedBy   string    `json:"updated_by"`
	IsArchived  bool      `json:"is_archived"`
}

// LoginRequest is the JSON login body. The same fields may arrive
// form-encoded as an OAuth2 password grant.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is the login success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest is the account half of a combined registration.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required"`
}

// CreateProjectRequest is the project half of a combined registration.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
}

// RegistrationRequest registers a project and its owner account as one
// logical operation.
type RegistrationRequest struct {
	Project CreateProjectRequest `json:"project" binding:"required"`
	User    CreateUserRequest    `json:"user" binding:"required"`
}

// ScheduleRequest sets the lighting window for a season. Times are HH:MM.
type ScheduleRequest struct {
	Season    Season `json:"season" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// Schedule is an accepted lighting window.
type Schedule struct {
	Season    Season    `json:"season"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAPISpecRequest attaches a spec to a project. SpecContent accepts a
// JSON object, an array or a plain string.
type CreateAPISpecRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Version     string `json:"version"`
	AccessRole  string `json:"access_role"`
	SpecContent any    `json:"spec_content"`
}

// CommandMessage is the payload published for a streetlight command.
type CommandMessage struct {
	Command string `json:"command"`
	SentAt  string `json:"sentAt"`
}
