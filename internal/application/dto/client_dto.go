package dto

import "time"

// AddressDTO endereço estruturado em requisições e respostas.
type AddressDTO struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
}

// CreateClientRequest entrada para criar um cliente.
type CreateClientRequest struct {
	Name     string     `json:"name"`
	Document string     `json:"document"` // CPF ou CNPJ, opcional
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Origin   string     `json:"origin"`
	Notes    string     `json:"notes"`
	PhotoURL string     `json:"photo_url"`
	Address  AddressDTO `json:"address"`
}

// UpdateClientRequest entrada para atualizar um cliente (campos opcionais).
type UpdateClientRequest struct {
	Name     *string     `json:"name"`
	Document *string     `json:"document"`
	Email    *string     `json:"email"`
	Phone    *string     `json:"phone"`
	Origin   *string     `json:"origin"`
	Notes    *string     `json:"notes"`
	PhotoURL *string     `json:"photo_url"`
	Address  *AddressDTO `json:"address"`
	Active   *bool       `json:"active"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Name      string     `json:"name"`
	Document  string     `json:"document"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Origin    string     `json:"origin"`
	Notes     string     `json:"notes"`
	PhotoURL  string     `json:"photo_url"`
	Address   AddressDTO `json:"address"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
