package dto

// OnboardingRequest dados coletados no formulário multi-etapas do onboarding.
type OnboardingRequest struct {
	// Etapa 1: dados pessoais
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`

	// Etapa 2: dados da empresa
	CompanyName  string `json:"company_name"`
	CompanyCNPJ  string `json:"company_cnpj"`
	CompanyPhone string `json:"company_phone"`
	CEP          string `json:"cep"`
	Logradouro   string `json:"logradouro"`
	Numero       string `json:"numero"`
	Complemento  string `json:"complemento"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	UF           string `json:"uf"`

	// Etapa 3: módulos selecionados
	Modules []string `json:"modules"`
}

// OnboardingResponse resultado do onboarding bem-sucedido.
type OnboardingResponse struct {
	Token         string   `json:"token"`
	AccountID     string   `json:"account_id"`
	CompanyID     string   `json:"company_id"`
	Slug          string   `json:"slug"`
	FailedModules []string `json:"failed_modules,omitempty"` // ativações best-effort que falharam
}
