package br

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Regras de senha do onboarding. A primeira regra que falhar é a mensagem devolvida.
var (
	ErrPasswordTooShort = errors.New("a senha deve ter pelo menos 8 caracteres")
	ErrPasswordNoUpper  = errors.New("a senha deve conter pelo menos uma letra maiúscula")
	ErrPasswordNoLower  = errors.New("a senha deve conter pelo menos uma letra minúscula")
	ErrPasswordNoDigit  = errors.New("a senha deve conter pelo menos um número")
)

// ValidateEmail verifica o formato do e-mail: um único @, partes local e de
// domínio não vazias e sem espaços, e pelo menos um ponto no domínio.
func ValidateEmail(email string) bool {
	at := strings.Count(email, "@")
	if at != 1 {
		return false
	}
	parts := strings.SplitN(email, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	if strings.ContainsAny(local, " \t") || strings.ContainsAny(domain, " \t") {
		return false
	}
	return strings.Contains(domain, ".")
}

// ValidatePassword aplica as regras de composição de senha e devolve o erro da
// primeira regra violada, ou nil se a senha for aceitável.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}

// GenerateEmail produz um e-mail placeholder sintaticamente válido e único por
// timestamp, usado para colaboradores cadastrados sem e-mail. Duas chamadas no
// mesmo instante do relógio podem coincidir; limitação aceita.
func GenerateEmail() string {
	return fmt.Sprintf("usuario%d@uniq.app", time.Now().UnixNano())
}
