package dto

import "time"

// CreateCollaboratorRequest entrada para criar um colaborador (sem credenciais).
type CreateCollaboratorRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	RoleID          string `json:"role_id"`
	AcceptsSchedule bool   `json:"accepts_schedule"`
}

// UpdateCollaboratorRequest entrada para atualizar um colaborador.
type UpdateCollaboratorRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	RoleID          *string `json:"role_id"`
	Active          *bool   `json:"active"`
	AcceptsSchedule *bool   `json:"accepts_schedule"`
}

// CollaboratorResponse saída de um colaborador.
type CollaboratorResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	RoleID          string    `json:"role_id,omitempty"`
	Active          bool      `json:"active"`
	AcceptsSchedule bool      `json:"accepts_schedule"`
	IsOwner         bool      `json:"is_owner"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
