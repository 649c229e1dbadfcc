package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// ProdutoUseCase casos de uso do cadastro de produtos. EstoqueAtual,
// PrecoMedio e ConsumoMedioDia são mantidos pelo motor de movimentos.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Create cadastra um produto novo com valoração zerada e os padrões de
// reposição (unidade "UN", lead time 7 dias, fator de segurança 1.2).
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Descricao == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Codigo != "" {
		existing, err := uc.repo.GetByCodigo(in.Codigo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:              uuid.New().String(),
		Codigo:          in.Codigo,
		EAN:             in.EAN,
		Descricao:       in.Descricao,
		NCM:             in.NCM,
		Unidade:         in.Unidade,
		PrecoMedio:      decimal.Zero,
		EstoqueAtual:    decimal.Zero,
		ConsumoMedioDia: decimal.Zero,
		LeadTimeDias:    in.LeadTimeDias,
		FatorSeguranca:  in.FatorSeguranca,
		CriadoEm:        now,
		AtualizadoEm:    now,
	}
	aplicarPadroes(produto)

	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return ToProdutoResponse(produto), nil
}

// GetByID obtém um produto por ID. (nil, nil) quando não existe.
func (uc *ProdutoUseCase) GetByID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return ToProdutoResponse(produto), nil
}

// List lista todos os produtos ordenados por descrição.
func (uc *ProdutoUseCase) List() ([]dto.ProdutoResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProdutoResponse(p))
	}
	return items, nil
}

// UpsertPorCodigo localiza o produto pelo código externo e atualiza os
// campos descritivos, ou cria um produto novo quando o código não existe
// (ou veio vazio). Operação compartilhada pelos dois caminhos de
// importação; aceita repositórios atados a uma transação.
func UpsertPorCodigo(repo repository.ProdutoRepository, reg dto.RegistroImportacao) (*entity.Produto, error) {
	if reg.Codigo != "" {
		produto, err := repo.GetByCodigo(reg.Codigo)
		if err != nil {
			return nil, err
		}
		if produto != nil {
			if reg.EAN != "" {
				produto.EAN = reg.EAN
			}
			if reg.Descricao != "" {
				produto.Descricao = reg.Descricao
			}
			if reg.NCM != "" {
				produto.NCM = reg.NCM
			}
			if reg.Unidade != "" {
				produto.Unidade = reg.Unidade
			}
			produto.AtualizadoEm = time.Now()
			if err := repo.Update(produto); err != nil {
				return nil, err
			}
			return produto, nil
		}
	}

	descricao := reg.Descricao
	if descricao == "" {
		descricao = "SEM DESCRICAO"
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:              uuid.New().String(),
		Codigo:          reg.Codigo,
		EAN:             reg.EAN,
		Descricao:       descricao,
		NCM:             reg.NCM,
		Unidade:         reg.Unidade,
		PrecoMedio:      decimal.Zero,
		EstoqueAtual:    decimal.Zero,
		ConsumoMedioDia: decimal.Zero,
		CriadoEm:        now,
		AtualizadoEm:    now,
	}
	aplicarPadroes(produto)
	if err := repo.Create(produto); err != nil {
		return nil, err
	}
	return produto, nil
}

// aplicarPadroes preenche os padrões de criação onde o chamador omitiu.
func aplicarPadroes(p *entity.Produto) {
	if p.Unidade == "" {
		p.Unidade = entity.UnidadePadrao
	}
	if p.LeadTimeDias <= 0 {
		p.LeadTimeDias = entity.LeadTimePadraoDias
	}
	if p.FatorSeguranca.LessThanOrEqual(decimal.Zero) {
		p.FatorSeguranca = entity.FatorSegurancaPadrao
	}
}

// ToProdutoResponse converte a entidade para o DTO de resposta.
func ToProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:              p.ID,
		Codigo:          p.Codigo,
		EAN:             p.EAN,
		Descricao:       p.Descricao,
		NCM:             p.NCM,
		Unidade:         p.Unidade,
		PrecoMedio:      p.PrecoMedio,
		EstoqueAtual:    p.EstoqueAtual,
		ConsumoMedioDia: p.ConsumoMedioDia,
		LeadTimeDias:    p.LeadTimeDias,
		FatorSeguranca:  p.FatorSeguranca,
		CriadoEm:        p.CriadoEm,
		AtualizadoEm:    p.AtualizadoEm,
	}
}
