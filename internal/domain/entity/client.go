package entity

import "time"

// Client contato do CRM com escopo de tenant (me_cliente).
type Client struct {
	ID        string
	CompanyID string
	Name      string
	Document  string // CPF ou CNPJ, opcional
	Email     string
	Phone     string
	Origin    string // tag de origem: indicação, instagram, etc.
	Notes     string
	PhotoURL  string
	Address   ClientAddress
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientAddress endereço estruturado opcional do cliente.
type ClientAddress struct {
	CEP         string
	Logradouro  string
	Numero      string
	Complemento string
	Bairro      string
	Cidade      string
	UF          string
}
