package br

// FormatCPF aplica a máscara ###.###.###-##. Entrada com mais de 11 dígitos é
// truncada antes de formatar; com menos, devolve os dígitos sem máscara.
func FormatCPF(doc string) string {
	digits := StripDigits(doc)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) < 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatCNPJ aplica a máscara ##.###.###/####-##. Entrada com mais de 14 dígitos
// é truncada antes de formatar; com menos, devolve os dígitos sem máscara.
func FormatCNPJ(doc string) string {
	digits := StripDigits(doc)
	if len(digits) > 14 {
		digits = digits[:14]
	}
	if len(digits) < 14 {
		return digits
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
}

// FormatDocument escolhe a máscara de CPF ou CNPJ pelo tamanho da entrada.
func FormatDocument(doc string) string {
	if len(StripDigits(doc)) > 11 {
		return FormatCNPJ(doc)
	}
	return FormatCPF(doc)
}

// FormatCEP aplica a máscara #####-###.
func FormatCEP(cep string) string {
	digits := StripDigits(cep)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	if len(digits) < 8 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

// FormatPhone aplica a máscara de telefone brasileiro: (##) ####-#### para 10
// dígitos e (##) #####-#### para 11 (celular). Outros tamanhos ficam sem máscara.
func FormatPhone(phone string) string {
	digits := StripDigits(phone)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch len(digits) {
	case 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	case 11:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	default:
		return digits
	}
}
