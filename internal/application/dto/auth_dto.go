package dto

import "time"

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse saída de uma conta (sem dados sensíveis).
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + conta + contexto da empresa do colaborador owner.
type LoginResponse struct {
	Token     string          `json:"token"`
	Account   AccountResponse `json:"account"`
	CompanyID string          `json:"company_id,omitempty"`
	Role      string          `json:"role,omitempty"`
}
