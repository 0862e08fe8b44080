package entity

import (
	"strings"
	"time"
)

// Rótulos de cargo equivalentes a dono da empresa (comparação case-insensitive).
var OwnerEquivalentRoles = []string{"owner", "admin", "dono", "administrador"}

// IsOwnerRole informa se o rótulo de cargo pertence ao conjunto equivalente a dono.
func IsOwnerRole(label string) bool {
	for _, r := range OwnerEquivalentRoles {
		if strings.EqualFold(label, r) {
			return true
		}
	}
	return false
}

// Account identidade autenticável (conta de login). Criada no passo 1 do
// onboarding, antes do provisionamento da empresa; por isso pode existir
// temporariamente sem Company (estado de falha parcial que exige compensação).
type Account struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca em claro após persistir
	FullName     string
	CreatedAt    time.Time
}

// Role cargo de colaborador dentro da empresa (me_cargo).
type Role struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}

// Collaborator colaborador da empresa (me_usuario). O colaborador "owner" é
// criado implicitamente no onboarding e vinculado à Account; colaboradores
// adicionados depois não recebem credenciais de login.
type Collaborator struct {
	ID              string
	CompanyID       string
	AccountID       string // vazio para colaboradores sem login
	Name            string
	Email           string
	Phone           string
	RoleID          string // opcional
	Active          bool
	AcceptsSchedule bool // aceita agendamento
	IsOwner         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
