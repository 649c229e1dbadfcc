package inventory

import (
	"context"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// DiarioUseCase consulta de leitura sobre o diário de movimentos.
type DiarioUseCase struct {
	movRepo     repository.MovimentoRepository
	produtoRepo repository.ProdutoRepository
}

// NewDiarioUseCase constrói o caso de uso.
func NewDiarioUseCase(movRepo repository.MovimentoRepository, produtoRepo repository.ProdutoRepository) *DiarioUseCase {
	return &DiarioUseCase{movRepo: movRepo, produtoRepo: produtoRepo}
}

// ListarPorProduto lista os movimentos de um produto, mais recentes
// primeiro, com paginação.
func (uc *DiarioUseCase) ListarPorProduto(ctx context.Context, produtoID string, limit, offset int) ([]dto.MovimentoResponse, error) {
	produto, err := uc.produtoRepo.GetByID(produtoID)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNotFound
	}
	movimentos, err := uc.movRepo.ListByProduto(produtoID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimentoResponse, 0, len(movimentos))
	for _, m := range movimentos {
		items = append(items, dto.MovimentoResponse{
			ID:         m.ID,
			ProdutoID:  m.ProdutoID,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			PrecoUnit:  m.PrecoUnit,
			Origem:     m.Origem,
			Documento:  m.Documento,
			Saldo:      m.Saldo,
			DataMov:    m.DataMov,
		})
	}
	return items, nil
}
