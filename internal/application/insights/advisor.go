// Package insights implementa o advisor agendado do CRM: varre leads parados e
// negócios estagnados e grava recomendações acionáveis por empresa.
package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/logger"
)

const (
	staleLeadAfter = 45 * 24 * time.Hour
	staleDealAfter = 7 * 24 * time.Hour
	maxPerKind     = 5
)

// Advisor gera insights de CRM por empresa.
type Advisor struct {
	crm       repository.CRMRepository
	insights  repository.InsightRepository
	companies repository.CompanyRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewAdvisor constrói o advisor.
func NewAdvisor(
	crm repository.CRMRepository,
	insights repository.InsightRepository,
	companies repository.CompanyRepository,
	log *logger.Logger,
) *Advisor {
	return &Advisor{crm: crm, insights: insights, companies: companies, log: log, now: time.Now}
}

// Generate executa o advisor para uma empresa: leads sem atividade há 45 dias e
// negócios abertos parados há 7 dias, no máximo 5 de cada tipo por execução.
func (a *Advisor) Generate(ctx context.Context, companyID string) (*dto.AdvisorResponse, error) {
	now := a.now()

	leads, err := a.crm.ListStaleLeads(ctx, companyID, now.Add(-staleLeadAfter), maxPerKind)
	if err != nil {
		return nil, err
	}
	deals, err := a.crm.ListStaleDeals(ctx, companyID, now.Add(-staleDealAfter), maxPerKind)
	if err != nil {
		return nil, err
	}

	batch := make([]*entity.Insight, 0, len(leads)+len(deals))
	for _, lead := range leads {
		days := int(now.Sub(lead.LastActivityAt).Hours() / 24)
		batch = append(batch, &entity.Insight{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Kind:      "lead_inativo",
			RefID:     lead.ID,
			Message:   fmt.Sprintf("O lead %q está sem atividade há %d dias. Vale um novo contato.", lead.Name, days),
			CreatedAt: now,
		})
	}
	for _, deal := range deals {
		days := int(now.Sub(deal.UpdatedAt).Hours() / 24)
		batch = append(batch, &entity.Insight{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Kind:      "negocio_parado",
			RefID:     deal.ID,
			Message:   fmt.Sprintf("O negócio %q está parado no estágio %q há %d dias.", deal.Title, deal.Stage, days),
			CreatedAt: now,
		})
	}

	if len(batch) > 0 {
		if err := a.insights.BulkInsert(ctx, batch); err != nil {
			return nil, err
		}
	}

	preview := make([]dto.InsightPreview, 0, len(batch))
	for _, in := range batch {
		preview = append(preview, dto.InsightPreview{Kind: in.Kind, Message: in.Message})
	}
	return &dto.AdvisorResponse{
		Success:           true,
		InsightsGenerated: len(batch),
		InsightsPreview:   preview,
	}, nil
}

// GenerateAll roda o advisor para todas as empresas. Falha em uma empresa não
// interrompe as demais.
func (a *Advisor) GenerateAll(ctx context.Context) {
	ids, err := a.companies.ListIDs(ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("advisor: falha ao listar empresas")
		return
	}
	for _, id := range ids {
		res, err := a.Generate(ctx, id)
		if err != nil {
			a.log.Error().Err(err).Str("company_id", id).Msg("advisor: falha ao gerar insights")
			continue
		}
		if res.InsightsGenerated > 0 {
			a.log.Info().Str("company_id", id).Int("count", res.InsightsGenerated).Msg("advisor: insights gerados")
		}
	}
}
