package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
)

// MovimentoRepository porta de persistência para o diário de movimentos.
// Create é a única escrita; movimentos nunca são alterados ou removidos.
type MovimentoRepository interface {
	Create(movimento *entity.Movimento) error
	// SumQuantidade soma as quantidades de movimentos do tipo dado a partir
	// de desde (inclusive). Zero quando não há movimentos.
	SumQuantidade(produtoID, tipo string, desde time.Time) (decimal.Decimal, error)
	// AvgSaldo média dos saldos registrados nos movimentos do produto na
	// janela. Zero quando não há movimentos.
	AvgSaldo(produtoID string, desde time.Time) (decimal.Decimal, error)
	ListByProduto(produtoID string, limit, offset int) ([]*entity.Movimento, error)
}
