package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Códigos de módulo do sistema. Devem coincidir com o CHECK de unq_empresa_modulos.
const (
	ModuleCRM        = "crm"
	ModuleFinance    = "finance"
	ModuleStorefront = "storefront"
	ModuleInventory  = "inventory"
	ModuleTeam       = "team"
	ModuleReports    = "reports"
	ModuleSettings   = "settings"
)

// CoreModules são sempre considerados ativos, independentemente do estado
// persistido: o conjunto armazenado nunca é consultado para eles.
var CoreModules = map[string]struct{}{
	ModuleSettings: {},
	ModuleReports:  {},
}

// KnownModules conjunto fechado de códigos aceitos pelas operações de ativação.
var KnownModules = map[string]struct{}{
	ModuleCRM:        {},
	ModuleFinance:    {},
	ModuleStorefront: {},
	ModuleInventory:  {},
	ModuleTeam:       {},
	ModuleReports:    {},
	ModuleSettings:   {},
}

// IsCoreModule informa se o código pertence ao conjunto núcleo.
func IsCoreModule(code string) bool {
	_, ok := CoreModules[code]
	return ok
}

// SystemModule entrada do catálogo global de módulos (unq_modulos_sistema).
// Não tem escopo de tenant.
type SystemModule struct {
	ID           string
	Code         string
	Name         string
	Description  string
	MonthlyPrice decimal.Decimal
	AnnualPrice  decimal.Decimal
	Icon         string
	Status       string // "active" | "dev"
	Features     []string
	CreatedAt    time.Time
}

