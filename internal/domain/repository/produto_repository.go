package repository

import (
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
)

// ProdutoRepository porta de persistência para produtos.
// GetByID/GetByCodigo retornam (nil, nil) quando não há produto.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	// GetByIDForUpdate bloqueia a linha do produto (SELECT FOR UPDATE) para
	// serializar movimentos concorrentes sobre o mesmo produto. Usar apenas
	// dentro de uma transação.
	GetByIDForUpdate(id string) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	List() ([]*entity.Produto, error)
	Update(produto *entity.Produto) error
	// UpdateValuation grava a projeção (estoque, preço médio) mantida pelo
	// motor de movimentos.
	UpdateValuation(id string, estoqueAtual, precoMedio decimal.Decimal) error
	UpdateConsumo(id string, consumoMedioDia decimal.Decimal) error
}
