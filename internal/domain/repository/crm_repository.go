package repository

import (
	"context"
	"time"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
)

// CRMRepository consultas de leitura do CRM usadas pelo advisor agendado.
type CRMRepository interface {
	// ListStaleLeads devolve leads sem atividade desde before, excluindo os já
	// perdidos (churned), limitado a limit linhas.
	ListStaleLeads(ctx context.Context, companyID string, before time.Time, limit int) ([]*entity.Lead, error)
	// ListStaleDeals devolve negócios abertos sem alteração desde before,
	// excluindo ganhos/perdidos/finalizados, limitado a limit linhas.
	ListStaleDeals(ctx context.Context, companyID string, before time.Time, limit int) ([]*entity.Deal, error)
}

// InsightRepository define o porto de persistência para os insights gerados.
type InsightRepository interface {
	BulkInsert(ctx context.Context, insights []*entity.Insight) error
}
