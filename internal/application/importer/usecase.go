package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/inventory"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/usecase"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// ImportacaoUseCase ingere documentos em massa: cada registro extraído
// roda em sua própria transação (upsert do produto por código + movimento),
// de modo que a falha de uma linha não desfaz as anteriores já commitadas.
type ImportacaoUseCase struct {
	txRunner inventory.TxRunner
	nfe      NFEParser
	planilha PlanilhaParser
}

// NewImportacaoUseCase constrói o caso de uso.
func NewImportacaoUseCase(txRunner inventory.TxRunner, nfe NFEParser, planilha PlanilhaParser) *ImportacaoUseCase {
	return &ImportacaoUseCase{txRunner: txRunner, nfe: nfe, planilha: planilha}
}

// ImportarXML importa os itens de uma NF-e como ENTRADAs. XML ilegível
// aborta a importação inteira com ErrInvalidInput.
func (uc *ImportacaoUseCase) ImportarXML(ctx context.Context, documento string, r io.Reader) (int, error) {
	registros, err := uc.nfe.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("%w: xml inválido: %v", domain.ErrInvalidInput, err)
	}

	processados := 0
	for _, reg := range registros {
		reg.Tipo = entity.TipoEntrada
		if err := uc.ingerir(ctx, reg, entity.OrigemXML, documento); err != nil {
			return processados, err
		}
		processados++
	}
	return processados, nil
}

// ImportarPlanilha importa as linhas de uma planilha. Arquivo ilegível ou
// sem as colunas obrigatórias aborta com ErrInvalidInput; linhas com tipo
// não reconhecido são ignoradas, sem falhar o lote.
func (uc *ImportacaoUseCase) ImportarPlanilha(ctx context.Context, documento string, r io.Reader) (int, error) {
	registros, err := uc.planilha.Parse(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	processadas := 0
	for _, reg := range registros {
		tipo := strings.ToUpper(strings.TrimSpace(reg.Tipo))
		if tipo == "" {
			tipo = entity.TipoEntrada
		}
		if !entity.TipoValido(tipo) {
			continue // linha ignorada, não é fatal
		}
		reg.Tipo = tipo
		if err := uc.ingerir(ctx, reg, entity.OrigemExcel, documento); err != nil {
			return processadas, err
		}
		processadas++
	}
	return processadas, nil
}

// ingerir executa a unidade de trabalho de um registro: upsert do produto
// pelo código, bloqueio da linha e aplicação do movimento, tudo na mesma
// transação. Ou a linha inteira commita, ou nada dela.
func (uc *ImportacaoUseCase) ingerir(ctx context.Context, reg dto.RegistroImportacao, origem, documento string) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := usecase.UpsertPorCodigo(produtoRepo, reg)
		if err != nil {
			return err
		}
		// Relê com bloqueio para serializar com movimentos concorrentes.
		produto, err = produtoRepo.GetByIDForUpdate(produto.ID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}
		return inventory.AplicarMovimentoEmTx(movRepo, produtoRepo, produto, inventory.MovimentoInput{
			Tipo:       reg.Tipo,
			Quantidade: reg.Quantidade,
			PrecoUnit:  reg.PrecoUnit,
			Origem:     origem,
			Documento:  documento,
			DataMov:    time.Now(),
		})
	})
}
