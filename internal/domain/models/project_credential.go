package models

import "time"

// CredentialDefaultTTLDays is the default credential lifetime applied when
// the caller does not supply an explicit expiry.
const CredentialDefaultTTLDays = 90

// ProjectCredential is an API key pair issued for a project.
// Key material is generated server-side and immutable after creation.
type ProjectCredential struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	APIKeyName string    `json:"api_key_name"`
	APIKey     string    `json:"api_key"`
	APISecret  string    `json:"api_secret"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// CreateProjectCredentialRequest is the payload for POST /project_credentials.
// Any client-supplied key material is ignored; ExpiresAt overrides the
// default 90-day expiry when set.
type CreateProjectCredentialRequest struct {
	ProjectID  int64      `json:"project_id" binding:"required"`
	APIKeyName string     `json:"api_key_name" binding:"required"`
	CreatedBy  int64      `json:"created_by"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// UpdateProjectCredentialRequest is the payload for PUT /project_credentials/:id.
// Only the expiry is mutable after creation.
type UpdateProjectCredentialRequest struct {
	ExpiresAt *time.Time `json:"expires_at"`
}
