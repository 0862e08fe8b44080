package br_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uniqerp/uniq-api/pkg/br"
)

func TestValidateCNPJ_VetoresValidos(t *testing.T) {
	valid := []string{
		"11.222.333/0001-81",
		"11222333000181",
	}
	for _, doc := range valid {
		assert.True(t, br.ValidateCNPJ(doc), "CNPJ %q deve ser válido", doc)
	}
}

func TestValidateCNPJ_RejeitaInvalidos(t *testing.T) {
	invalid := []string{
		"",
		"11.222.333/0001-80",  // segundo verificador mutado
		"11.222.333/0001-71",  // primeiro verificador mutado
		"1122233300018",       // 13 dígitos
		"00000000000000",      // todos iguais
	}
	for _, doc := range invalid {
		assert.False(t, br.ValidateCNPJ(doc), "CNPJ %q deve ser rejeitado", doc)
	}
}

// Mutar qualquer um dos dois dígitos verificadores invalida o CNPJ.
func TestValidateCNPJ_MutacaoDosVerificadores(t *testing.T) {
	const base = "11222333000181"
	for pos := 12; pos <= 13; pos++ {
		for d := byte('0'); d <= '9'; d++ {
			if base[pos] == d {
				continue
			}
			mutated := base[:pos] + string(d) + base[pos+1:]
			assert.False(t, br.ValidateCNPJ(mutated),
				"mutação %q na posição %d deve invalidar o CNPJ", mutated, pos)
		}
	}
}

func TestValidateDocument_DecidePorTamanho(t *testing.T) {
	assert.True(t, br.ValidateDocument("529.982.247-25"))
	assert.True(t, br.ValidateDocument("11.222.333/0001-81"))
	assert.False(t, br.ValidateDocument("12345"))
}
