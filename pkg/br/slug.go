package br

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics decompõe (NFD) e descarta as marcas de combinação,
// transformando "São João Açaí" em "Sao Joao Acai".
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify deriva um slug seguro para URL a partir do nome da empresa:
// minúsculas, acentos removidos, sequências não alfanuméricas colapsadas em um
// único hífen e hífens das pontas removidos.
func Slugify(name string) string {
	clean, _, err := transform.String(removeDiacritics, name)
	if err != nil {
		clean = name
	}
	clean = strings.ToLower(clean)

	var b strings.Builder
	lastHyphen := true // suprime hífen inicial
	for _, r := range clean {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// SlugWithSuffix acrescenta um sufixo numérico aleatório de 4 dígitos ao slug.
// A unicidade é probabilística: o sufixo não é conferido contra slugs existentes;
// quem persiste deve tratar a violação de unicidade (ver onboarding).
func SlugWithSuffix(name string) string {
	return fmt.Sprintf("%s-%04d", Slugify(name), rand.Intn(10000))
}
