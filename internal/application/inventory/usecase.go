package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/estoque"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// JanelaConsumoDias janela móvel usada para estimar o consumo médio diário.
const JanelaConsumoDias = 30

// RegistrarMovimentoUseCase registra movimentos de estoque de forma
// transacional (ENTRADA, SAIDA, AJUSTE) com bloqueio de linha
// (SELECT FOR UPDATE) e Commit/Rollback.
type RegistrarMovimentoUseCase struct {
	txRunner TxRunner
}

// NewRegistrarMovimentoUseCase constrói o caso de uso.
func NewRegistrarMovimentoUseCase(txRunner TxRunner) *RegistrarMovimentoUseCase {
	return &RegistrarMovimentoUseCase{txRunner: txRunner}
}

// MovimentoInput dados já validados de um movimento a aplicar.
type MovimentoInput struct {
	Tipo       string
	Quantidade decimal.Decimal
	PrecoUnit  decimal.Decimal
	Origem     string
	Documento  string
	DataMov    time.Time
}

// Registrar valida a entrada e executa a unidade de trabalho em uma única
// transação: bloqueia o produto, grava o movimento no diário, atualiza a
// projeção (estoque, preço médio) e recalcula o consumo médio.
func (uc *RegistrarMovimentoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimentoRequest) error {
	tipo := strings.ToUpper(strings.TrimSpace(in.Tipo))
	if in.ProdutoID == "" || !entity.TipoValido(tipo) {
		return domain.ErrInvalidInput
	}
	// Quantidade com sinal só faz sentido em AJUSTE; preço nunca é negativo.
	if tipo != entity.TipoAjuste && in.Quantidade.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.PrecoUnit.IsNegative() {
		return domain.ErrInvalidInput
	}

	origem := in.Origem
	if origem == "" {
		origem = entity.OrigemManual
	}
	dataMov := time.Now()
	if in.DataMov != nil {
		dataMov = *in.DataMov
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.GetByIDForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		return AplicarMovimentoEmTx(movRepo, produtoRepo, produto, MovimentoInput{
			Tipo:       tipo,
			Quantidade: in.Quantidade,
			PrecoUnit:  in.PrecoUnit,
			Origem:     origem,
			Documento:  in.Documento,
			DataMov:    dataMov,
		})
	})
}

// AplicarMovimentoEmTx aplica um movimento usando repositórios já atados à
// transação do chamador. Usado pelo lançamento manual e pelo importador
// (uma transação por linha). Aplicar o mesmo movimento duas vezes conta em
// dobro; a garantia de unicidade vem do diário append-only.
func AplicarMovimentoEmTx(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	produto *entity.Produto,
	in MovimentoInput,
) error {
	novoEstoque, novoPreco := estoque.AplicarMovimento(
		in.Tipo, produto.EstoqueAtual, produto.PrecoMedio, in.Quantidade, in.PrecoUnit,
	)

	mov := &entity.Movimento{
		ID:         uuid.New().String(),
		ProdutoID:  produto.ID,
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
		PrecoUnit:  in.PrecoUnit,
		Origem:     in.Origem,
		Documento:  in.Documento,
		Saldo:      novoEstoque,
		DataMov:    in.DataMov,
	}
	if err := movRepo.Create(mov); err != nil {
		return err
	}
	if err := produtoRepo.UpdateValuation(produto.ID, novoEstoque, novoPreco); err != nil {
		return err
	}
	produto.EstoqueAtual = novoEstoque
	produto.PrecoMedio = novoPreco

	// O refresh roda após qualquer tipo de movimento; para não-SAIDA o
	// resultado não muda.
	return refreshConsumo(movRepo, produtoRepo, produto.ID, JanelaConsumoDias)
}

// refreshConsumo soma as SAIDAs da janela móvel e grava o consumo médio
// diário no produto.
func refreshConsumo(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	produtoID string,
	dias int,
) error {
	if dias <= 0 {
		return produtoRepo.UpdateConsumo(produtoID, decimal.Zero)
	}
	desde := time.Now().AddDate(0, 0, -dias)
	total, err := movRepo.SumQuantidade(produtoID, entity.TipoSaida, desde)
	if err != nil {
		return err
	}
	consumo := total.Div(decimal.NewFromInt(int64(dias)))
	return produtoRepo.UpdateConsumo(produtoID, consumo)
}
