package dto

// InsightPreview resumo de um insight gerado (para a resposta do advisor).
type InsightPreview struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// AdvisorResponse resultado de uma execução do advisor.
type AdvisorResponse struct {
	Success           bool             `json:"success"`
	InsightsGenerated int              `json:"insights_generated"`
	InsightsPreview   []InsightPreview `json:"insights_preview"`
}

// CEPResponse endereço devolvido pela consulta de CEP.
type CEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge,omitempty"`
}
