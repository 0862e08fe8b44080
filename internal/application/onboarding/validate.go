package onboarding

import (
	"github.com/uniqerp/uniq-api/internal/application/dto"
	"github.com/uniqerp/uniq-api/pkg/br"
)

// Validate aplica as regras de cada etapa de coleta do formulário: campos
// obrigatórios, formato de e-mail, dígitos verificadores do CPF/CNPJ e
// composição de senha. Devolve uma mensagem por campo inválido; a lista vazia
// libera o avanço. Erros de validação nunca chegam ao banco.
func Validate(in dto.OnboardingRequest) []dto.FieldError {
	var errs []dto.FieldError
	add := func(field, message string) {
		errs = append(errs, dto.FieldError{Field: field, Message: message})
	}

	// Etapa 1: dados pessoais
	if in.FullName == "" {
		add("full_name", "nome completo é obrigatório")
	}
	if !br.ValidateEmail(in.Email) {
		add("email", "e-mail inválido")
	}
	if in.CPF != "" && !br.ValidateCPF(in.CPF) {
		add("cpf", "CPF inválido")
	}
	if err := br.ValidatePassword(in.Password); err != nil {
		add("password", err.Error())
	}

	// Etapa 2: dados da empresa
	if in.CompanyName == "" {
		add("company_name", "nome da empresa é obrigatório")
	}
	if in.CompanyCNPJ != "" && !br.ValidateCNPJ(in.CompanyCNPJ) {
		add("company_cnpj", "CNPJ inválido")
	}
	if cep := br.StripDigits(in.CEP); cep != "" && len(cep) != 8 {
		add("cep", "CEP deve ter 8 dígitos")
	}

	return errs
}
