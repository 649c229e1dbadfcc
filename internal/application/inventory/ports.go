package inventory

import (
	"context"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Garante que diário, valoração e
// consumo sejam gravados juntos ou nenhum deles.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
