package dto

// SystemModuleResponse entrada do catálogo de módulos.
type SystemModuleResponse struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MonthlyPrice string   `json:"monthly_price"`
	AnnualPrice  string   `json:"annual_price"`
	Icon         string   `json:"icon"`
	Status       string   `json:"status"` // "active" | "dev"
	Features     []string `json:"features"`
	Active       bool     `json:"active"` // ativo para a empresa autenticada
}

// ToggleModuleRequest entrada para ativar/desativar um módulo da empresa.
type ToggleModuleRequest struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// ActiveModulesResponse conjunto de módulos vigentes da empresa.
type ActiveModulesResponse struct {
	Modules []string `json:"modules"`
}

// TogglePermissionRequest entrada para permitir/revogar um módulo para um cargo.
type TogglePermissionRequest struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// RolePermissionsResponse códigos de módulo permitidos para um cargo.
type RolePermissionsResponse struct {
	RoleID  string   `json:"role_id"`
	Modules []string `json:"modules"`
}
