package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarMovimentoRequest entrada para lançar um movimento manual.
// data_mov omitido assume o instante do lançamento.
type RegistrarMovimentoRequest struct {
	ProdutoID  string          `json:"produto_id" validate:"required"`
	Tipo       string          `json:"tipo" validate:"required"`
	Quantidade decimal.Decimal `json:"quantidade"`
	PrecoUnit  decimal.Decimal `json:"preco_unit"`
	Origem     string          `json:"origem"`
	Documento  string          `json:"documento"`
	DataMov    *time.Time      `json:"data_mov"`
}

// MovimentoResponse saída de um movimento do diário.
type MovimentoResponse struct {
	ID         string          `json:"id"`
	ProdutoID  string          `json:"produto_id"`
	Tipo       string          `json:"tipo"`
	Quantidade decimal.Decimal `json:"quantidade"`
	PrecoUnit  decimal.Decimal `json:"preco_unit"`
	Origem     string          `json:"origem,omitempty"`
	Documento  string          `json:"documento,omitempty"`
	Saldo      decimal.Decimal `json:"saldo"`
	DataMov    time.Time       `json:"data_mov"`
}

// SugestaoCompraResponse resultado do cálculo de reposição (2 casas).
type SugestaoCompraResponse struct {
	EstoqueMin     decimal.Decimal `json:"estoque_min"`
	EstoqueMax     decimal.Decimal `json:"estoque_max"`
	SugestaoCompra decimal.Decimal `json:"sugestao_compra"`
}
