package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/entity"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/br"
)

// CollaboratorUseCase casos de uso do cadastro de colaboradores.
// Colaboradores criados aqui não recebem credenciais de login: só o owner do
// onboarding tem conta vinculada.
type CollaboratorUseCase struct {
	repo  repository.CollaboratorRepository
	roles repository.RoleRepository
}

// NewCollaboratorUseCase constrói o caso de uso.
func NewCollaboratorUseCase(repo repository.CollaboratorRepository, roles repository.RoleRepository) *CollaboratorUseCase {
	return &CollaboratorUseCase{repo: repo, roles: roles}
}

// Create cria um colaborador sem credenciais. O cargo, se informado, precisa
// pertencer à mesma empresa.
func (uc *CollaboratorUseCase) Create(ctx context.Context, companyID string, in dto.CreateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email == "" {
		// Colaborador sem e-mail recebe um placeholder gerado; o campo fica
		// preenchido para exibição e pode ser trocado depois via update.
		in.Email = br.GenerateEmail()
	} else if !br.ValidateEmail(in.Email) {
		return nil, domain.ErrInvalidInput
	}
	if in.RoleID != "" {
		role, err := uc.roles.GetByID(ctx, in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil || role.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	collaborator := &entity.Collaborator{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		Email:           in.Email,
		Phone:           br.StripDigits(in.Phone),
		RoleID:          in.RoleID,
		Active:          true,
		AcceptsSchedule: in.AcceptsSchedule,
		IsOwner:         false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, collaborator); err != nil {
		return nil, err
	}
	return collaboratorToResponse(collaborator), nil
}

// List lista colaboradores da empresa com paginação.
func (uc *CollaboratorUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*dto.CollaboratorResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CollaboratorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, collaboratorToResponse(c))
	}
	return out, nil
}

// Update aplica os campos presentes (inclui ligar/desligar o flag active).
func (uc *CollaboratorUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCollaboratorRequest) (*dto.CollaboratorResponse, error) {
	collaborator, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collaborator == nil || collaborator.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		collaborator.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email != "" && !br.ValidateEmail(*in.Email) {
			return nil, domain.ErrInvalidInput
		}
		collaborator.Email = *in.Email
	}
	if in.Phone != nil {
		collaborator.Phone = br.StripDigits(*in.Phone)
	}
	if in.RoleID != nil {
		collaborator.RoleID = *in.RoleID
	}
	if in.Active != nil {
		collaborator.Active = *in.Active
	}
	if in.AcceptsSchedule != nil {
		collaborator.AcceptsSchedule = *in.AcceptsSchedule
	}
	collaborator.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, collaborator); err != nil {
		return nil, err
	}
	return collaboratorToResponse(collaborator), nil
}

func collaboratorToResponse(c *entity.Collaborator) *dto.CollaboratorResponse {
	return &dto.CollaboratorResponse{
		ID:              c.ID,
		CompanyID:       c.CompanyID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           br.FormatPhone(c.Phone),
		RoleID:          c.RoleID,
		Active:          c.Active,
		AcceptsSchedule: c.AcceptsSchedule,
		IsOwner:         c.IsOwner,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
