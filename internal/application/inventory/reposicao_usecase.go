package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// ReposicaoUseCase deriva mínimo/máximo de estoque e sugestão de compra a
// partir do consumo médio, lead time e fator de segurança do produto.
// Consulta pura, sem mutação: duas chamadas sem movimento entre elas
// produzem o mesmo resultado.
type ReposicaoUseCase struct {
	produtoRepo repository.ProdutoRepository
}

// NewReposicaoUseCase constrói o caso de uso.
func NewReposicaoUseCase(produtoRepo repository.ProdutoRepository) *ReposicaoUseCase {
	return &ReposicaoUseCase{produtoRepo: produtoRepo}
}

// Sugerir calcula, com 2 casas decimais:
//
//	estoque_min     = consumo_medio_dia * lead_time_dias
//	estoque_max     = estoque_min * fator_seguranca
//	sugestao_compra = max(0, estoque_max - estoque_atual)
//
// Zeros gravados ficam zero: um produto sem movimentos produz
// estoque_min = 0 e sugestao = 0, que é resposta válida, não erro.
func (uc *ReposicaoUseCase) Sugerir(ctx context.Context, produtoID string) (*dto.SugestaoCompraResponse, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}

	lead := decimal.NewFromInt(int64(produto.LeadTimeDias))
	estoqueMin := produto.ConsumoMedioDia.Mul(lead)
	estoqueMax := estoqueMin.Mul(produto.FatorSeguranca)
	sugestao := estoqueMax.Sub(produto.EstoqueAtual)
	if sugestao.IsNegative() {
		sugestao = decimal.Zero
	}

	return &dto.SugestaoCompraResponse{
		EstoqueMin:     estoqueMin.Round(2),
		EstoqueMax:     estoqueMax.Round(2),
		SugestaoCompra: sugestao.Round(2),
	}, nil
}
