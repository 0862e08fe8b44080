package entity

import "time"

// Company representa uma empresa/tenant do sistema. Criada exatamente uma vez
// por onboarding concluído; todas as linhas com escopo de tenant referenciam seu ID.
type Company struct {
	ID        string
	Name      string
	CNPJ      string // com ou sem máscara; validado no onboarding
	Slug      string // derivado do nome + sufixo numérico (único)
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompanyAddress endereço da sede da empresa, preenchido no onboarding
// (normalmente via consulta de CEP).
type CompanyAddress struct {
	ID          string
	CompanyID   string
	CEP         string
	Logradouro  string
	Numero      string
	Complemento string
	Bairro      string
	Cidade      string
	UF          string
	CreatedAt   time.Time
}
