package auth

import (
	"context"

	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/internal/domain"
	"github.com/uniqerp/uniq-api/internal/domain/repository"
	"github.com/uniqerp/uniq-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticação (login). O cadastro de contas
// acontece exclusivamente pelo onboarding.
type AuthUseCase struct {
	accounts      repository.AccountRepository
	collaborators repository.CollaboratorRepository
	roles         repository.RoleRepository
	jwtCfg        JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	accounts repository.AccountRepository,
	collaborators repository.CollaboratorRepository,
	roles repository.RoleRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, collaborators: collaborators, roles: roles, jwtCfg: jwtCfg}
}

// Login verifica email/senha, resolve a empresa e o cargo do colaborador
// vinculado e gera o JWT. A empresa é resolvida a cada login: um company_id de
// sessão anterior nunca é reaproveitado.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Conta sem colaborador vinculado é o estado órfão de um onboarding que
	// falhou sem compensação completa; não recebe sessão utilizável.
	collaborator, err := uc.collaborators.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, err
	}
	companyID, role := "", ""
	if collaborator != nil {
		if !collaborator.Active {
			return nil, domain.ErrForbidden
		}
		companyID = collaborator.CompanyID
		role = "owner"
		if !collaborator.IsOwner && collaborator.RoleID != "" {
			r, err := uc.roles.GetByID(ctx, collaborator.RoleID)
			if err != nil {
				return nil, err
			}
			if r != nil {
				role = r.Name
			}
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, companyID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Account: dto.AccountResponse{
			ID:        account.ID,
			Email:     account.Email,
			FullName:  account.FullName,
			CreatedAt: account.CreatedAt,
		},
		CompanyID: companyID,
		Role:      role,
	}, nil
}
