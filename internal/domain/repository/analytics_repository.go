package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaidaPorProduto linha agregada para a curva ABC: total de SAIDAs do
// produto na janela, com o preço médio corrente como proxy do custo.
type SaidaPorProduto struct {
	ProdutoID  string
	Descricao  string
	PrecoMedio decimal.Decimal
	QtdSaida   decimal.Decimal
}

// AnalyticsRepository consultas agregadas de leitura sobre o portfólio.
type AnalyticsRepository interface {
	// SaidasPorProduto retorna todos os produtos (LEFT JOIN) com a soma de
	// SAIDAs na janela; produtos sem movimento vêm com QtdSaida zero.
	SaidasPorProduto(desde time.Time) ([]SaidaPorProduto, error)
	// ValorEstoqueTotal soma estoque_atual * preco_medio de todos os
	// produtos (fotografia instantânea, sem janela).
	ValorEstoqueTotal() (decimal.Decimal, error)
}
