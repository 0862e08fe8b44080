// Package br reúne validações e formatações de documentos e dados brasileiros
// (CPF, CNPJ, CEP, telefone) usadas pelo cadastro e pelo onboarding.
// Todas as funções são puras e aceitam entrada com ou sem máscara.
package br

import "unicode"

// pesos do primeiro dígito verificador do CPF, aplicados aos 9 primeiros dígitos.
var cpfWeightsFirst = [9]int{10, 9, 8, 7, 6, 5, 4, 3, 2}

// pesos do segundo dígito verificador do CPF, aplicados aos 10 primeiros dígitos.
var cpfWeightsSecond = [10]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

// ValidateCPF valida o CPF (com ou sem máscara) pelo algoritmo módulo 11 da Receita.
// Rejeita entradas que não tenham 11 dígitos ou cujos dígitos sejam todos iguais
// (sequências como 111.111.111-11 passam na fórmula, mas não são CPFs emitidos).
func ValidateCPF(doc string) bool {
	digits := StripDigits(doc)
	if len(digits) != 11 || allSameDigits(digits) {
		return false
	}
	first := checkDigit([]byte(digits[:9]), cpfWeightsFirst[:])
	if digits[9] != first {
		return false
	}
	second := checkDigit([]byte(digits[:10]), cpfWeightsSecond[:])
	return digits[10] == second
}

// checkDigit calcula um dígito verificador módulo 11: resto < 2 vira 0,
// caso contrário 11 - resto.
func checkDigit(digits []byte, weights []int) byte {
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * weights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + (11 - remainder))
}

// StripDigits devolve apenas os dígitos ASCII da entrada.
func StripDigits(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

func allSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return len(s) > 0
}
