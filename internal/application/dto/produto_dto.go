package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para cadastrar um produto.
// Campos omitidos recebem os padrões: unidade "UN", lead_time_dias 7,
// fator_seguranca 1.2.
type CreateProdutoRequest struct {
	Codigo         string          `json:"codigo"`
	EAN            string          `json:"ean"`
	Descricao      string          `json:"descricao" validate:"required"`
	NCM            string          `json:"ncm"`
	Unidade        string          `json:"unidade"`
	LeadTimeDias   int             `json:"lead_time_dias"`
	FatorSeguranca decimal.Decimal `json:"fator_seguranca"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID              string          `json:"id"`
	Codigo          string          `json:"codigo,omitempty"`
	EAN             string          `json:"ean,omitempty"`
	Descricao       string          `json:"descricao"`
	NCM             string          `json:"ncm,omitempty"`
	Unidade         string          `json:"unidade"`
	PrecoMedio      decimal.Decimal `json:"preco_medio"`
	EstoqueAtual    decimal.Decimal `json:"estoque_atual"`
	ConsumoMedioDia decimal.Decimal `json:"consumo_medio_dia"`
	LeadTimeDias    int             `json:"lead_time_dias"`
	FatorSeguranca  decimal.Decimal `json:"fator_seguranca"`
	CriadoEm        time.Time       `json:"criado_em"`
	AtualizadoEm    time.Time       `json:"atualizado_em"`
}
