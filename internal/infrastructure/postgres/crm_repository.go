package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
)

var _ repository.CRMRepository = (*CRMRepo)(nil)
var _ repository.InsightRepository = (*InsightRepo)(nil)

// CRMRepo consultas de leitura sobre unq_lead e unq_negocio para o advisor.
type CRMRepo struct {
	q Querier
}

// NewCRMRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCRMRepository(q Querier) *CRMRepo {
	return &CRMRepo{q: q}
}

// ListStaleLeads devolve leads sem atividade desde before, excluindo churned.
func (r *CRMRepo) ListStaleLeads(ctx context.Context, companyID string, before time.Time, limit int) ([]*entity.Lead, error) {
	query := `
		SELECT id, company_id, name, status, last_activity_at, created_at
		FROM unq_lead
		WHERE company_id = $1 AND status <> 'churned' AND last_activity_at < $2
		ORDER BY last_activity_at
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list leads parados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Name, &l.Status, &l.LastActivityAt, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListStaleDeals devolve negócios abertos sem alteração desde before.
func (r *CRMRepo) ListStaleDeals(ctx context.Context, companyID string, before time.Time, limit int) ([]*entity.Deal, error) {
	query := `
		SELECT id, company_id, title, stage, updated_at, created_at
		FROM unq_negocio
		WHERE company_id = $1 AND stage NOT IN ('ganho', 'perdido', 'finalizado') AND updated_at < $2
		ORDER BY updated_at
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("list negocios parados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		var d entity.Deal
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Title, &d.Stage, &d.UpdatedAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan negocio: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// InsightRepo persistência dos insights gerados (unq_insight).
type InsightRepo struct {
	q Querier
}

// NewInsightRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInsightRepository(q Querier) *InsightRepo {
	return &InsightRepo{q: q}
}

// BulkInsert grava o lote de insights de uma execução do advisor.
func (r *InsightRepo) BulkInsert(ctx context.Context, insights []*entity.Insight) error {
	query := `
		INSERT INTO unq_insight (id, company_id, kind, ref_id, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, in := range insights {
		if _, err := r.q.Exec(ctx, query, in.ID, in.CompanyID, in.Kind, in.RefID, in.Message, in.CreatedAt); err != nil {
			return fmt.Errorf("insert insight: %w", err)
		}
	}
	return nil
}
