package models

import "time"

// ProjectMember links a user to a project with a role.
// A user is a member of a project at most once.
type ProjectMember struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	UserID     int64     `json:"user_id"`
	MemberRole string    `json:"member_role"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateProjectMemberRequest is the payload for POST /project_members.
type CreateProjectMemberRequest struct {
	ProjectID  int64  `json:"project_id" binding:"required"`
	UserID     int64  `json:"user_id" binding:"required"`
	MemberRole string `json:"member_role" binding:"required"`
}

// UpdateProjectMemberRequest is the payload for PUT /project_members/:id.
// Only the role is mutable after creation.
type UpdateProjectMemberRequest struct {
	MemberRole *string `json:"member_role"`
}
