package dto

import "github.com/shopspring/decimal"

// GiroResponse giro de estoque aproximado na janela.
type GiroResponse struct {
	PeriodoDias       int             `json:"periodo_dias"`
	CogsAprox         decimal.Decimal `json:"cogs_aprox"`
	EstoqueMedioAprox decimal.Decimal `json:"estoque_medio_aprox"`
	Giro              decimal.Decimal `json:"giro"`
}

// CurvaABCItem um produto classificado na curva ABC.
type CurvaABCItem struct {
	ProdutoID string          `json:"id"`
	Descricao string          `json:"descricao"`
	Valor     decimal.Decimal `json:"valor"`
	Perc      decimal.Decimal `json:"perc"`
	Acumulado decimal.Decimal `json:"acumulado"`
	Classe    string          `json:"classe"`
}

// CapitalDeGiroResponse estimativa instantânea de capital de giro.
// O parâmetro dias é aceito e ecoado, mas não janela o cálculo.
type CapitalDeGiroResponse struct {
	Dias             int             `json:"dias"`
	ValorEstoque     decimal.Decimal `json:"valor_estoque"`
	ContasPagar      decimal.Decimal `json:"contas_pagar"`
	ContasReceber    decimal.Decimal `json:"contas_receber"`
	CapitalGiroAprox decimal.Decimal `json:"capital_giro_aprox"`
}
