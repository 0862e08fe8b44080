package br

// pesos dos dígitos verificadores do CNPJ (módulo 11, sequência fixa da Receita).
var (
	cnpjWeightsFirst  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ valida o CNPJ (com ou sem máscara) pelo algoritmo módulo 11 ponderado.
// Rejeita entradas que não tenham 14 dígitos ou cujos dígitos sejam todos iguais.
func ValidateCNPJ(doc string) bool {
	digits := StripDigits(doc)
	if len(digits) != 14 || allSameDigits(digits) {
		return false
	}
	first := checkDigit([]byte(digits[:12]), cnpjWeightsFirst[:])
	if digits[12] != first {
		return false
	}
	second := checkDigit([]byte(digits[:13]), cnpjWeightsSecond[:])
	return digits[13] == second
}

// ValidateDocument aceita CPF (11 dígitos) ou CNPJ (14 dígitos), decidindo pelo
// tamanho após remover a máscara. Qualquer outro tamanho é inválido.
func ValidateDocument(doc string) bool {
	switch len(StripDigits(doc)) {
	case 11:
		return ValidateCPF(doc)
	case 14:
		return ValidateCNPJ(doc)
	default:
		return false
	}
}
