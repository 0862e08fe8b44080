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

// ClientUseCase casos de uso do cadastro de clientes (CRM).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cria um cliente. Documento, quando informado, precisa ser um CPF ou
// CNPJ válido e único dentro da empresa.
func (uc *ClientUseCase) Create(ctx context.Context, companyID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	document := br.StripDigits(in.Document)
	if document != "" {
		if !br.ValidateDocument(document) {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetByCompanyAndDocument(ctx, companyID, document)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Document:  document,
		Email:     in.Email,
		Phone:     br.StripDigits(in.Phone),
		Origin:    in.Origin,
		Notes:     in.Notes,
		PhotoURL:  in.PhotoURL,
		Address:   addressFromDTO(in.Address),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// GetByID obtém um cliente da empresa.
func (uc *ClientUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return clientToResponse(client), nil
}

// List lista clientes da empresa com paginação.
func (uc *ClientUseCase) List(ctx context.Context, companyID string, onlyActive bool, limit, offset int) ([]*dto.ClientResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clientToResponse(c))
	}
	return out, nil
}

// Update aplica os campos presentes e devolve o cliente atualizado.
func (uc *ClientUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil || client.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Document != nil {
		document := br.StripDigits(*in.Document)
		if document != "" && !br.ValidateDocument(document) {
			return nil, domain.ErrInvalidInput
		}
		client.Document = document
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = br.StripDigits(*in.Phone)
	}
	if in.Origin != nil {
		client.Origin = *in.Origin
	}
	if in.Notes != nil {
		client.Notes = *in.Notes
	}
	if in.PhotoURL != nil {
		client.PhotoURL = *in.PhotoURL
	}
	if in.Address != nil {
		client.Address = addressFromDTO(*in.Address)
	}
	if in.Active != nil {
		client.Active = *in.Active
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

// Deactivate marca o cliente como inativo (exclusão lógica).
func (uc *ClientUseCase) Deactivate(ctx context.Context, companyID, id string) error {
	inactive := false
	_, err := uc.Update(ctx, companyID, id, dto.UpdateClientRequest{Active: &inactive})
	return err
}

func addressFromDTO(a dto.AddressDTO) entity.ClientAddress {
	return entity.ClientAddress{
		CEP:         br.StripDigits(a.CEP),
		Logradouro:  a.Logradouro,
		Numero:      a.Numero,
		Complemento: a.Complemento,
		Bairro:      a.Bairro,
		Cidade:      a.Cidade,
		UF:          a.UF,
	}
}

func clientToResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		Document:  br.FormatDocument(c.Document),
		Email:     c.Email,
		Phone:     br.FormatPhone(c.Phone),
		Origin:    c.Origin,
		Notes:     c.Notes,
		PhotoURL:  c.PhotoURL,
		Address: dto.AddressDTO{
			CEP:         br.FormatCEP(c.Address.CEP),
			Logradouro:  c.Address.Logradouro,
			Numero:      c.Address.Numero,
			Complemento: c.Address.Complemento,
			Bairro:      c.Address.Bairro,
			Cidade:      c.Address.Cidade,
			UF:          c.Address.UF,
		},
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
