package dto

// SaleItemInput linha do carrinho enviada no registro da venda.
type SaleItemInput struct {
	ItemID    string `json:"item_id"`
	ItemType  string `json:"item_type"` // "produto" | "servico"
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"` // decimal como string, ex. "59.90"
}

// RegisterSaleRequest entrada do registro de venda do ponto de venda.
type RegisterSaleRequest struct {
	CustomerID    string          `json:"customer_id,omitempty"`
	Items         []SaleItemInput `json:"items"`
	PaymentMethod string          `json:"payment_method"`
	DueDate       string          `json:"due_date,omitempty"` // YYYY-MM-DD; padrão hoje
	Notes         string          `json:"notes,omitempty"`
	Origin        string          `json:"origin"`
}

// RegisterSaleResponse resultado do registro de venda.
type RegisterSaleResponse struct {
	Success      bool   `json:"success"`
	SaleID       string `json:"sale_id"`
	ReceivableID string `json:"receivable_id"`
	Total        string `json:"total"`
}
