package entity

import "time"

// Estágios de negócio considerados encerrados pelo advisor.
const (
	DealWon      = "ganho"
	DealLost     = "perdido"
	DealFinished = "finalizado"
)

// Lead contato de prospecção do CRM (unq_lead).
type Lead struct {
	ID             string
	CompanyID      string
	Name           string
	Status         string // "novo", "em_contato", "churned", ...
	LastActivityAt time.Time
	CreatedAt      time.Time
}

// Deal negócio/oportunidade em andamento (unq_negocio).
type Deal struct {
	ID          string
	CompanyID   string
	Title       string
	Stage       string
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

// Insight linha de recomendação gerada pelo advisor agendado (unq_insight).
type Insight struct {
	ID        string
	CompanyID string
	Kind      string // "lead_inativo" | "negocio_parado"
	RefID     string // lead ou negócio que originou o insight
	Message   string
	CreatedAt time.Time
}
