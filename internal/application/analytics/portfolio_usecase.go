package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// Janelas padrão de cada consulta (dias).
const (
	JanelaGiroPadrao    = 30
	JanelaABCPadrao     = 90
	JanelaCapitalPadrao = 30
)

var cem = decimal.NewFromInt(100)

// Limites cumulativos da curva ABC (inclusivos).
var (
	limiteClasseA = decimal.NewFromInt(80)
	limiteClasseB = decimal.NewFromInt(95)
)

// PortfolioUseCase consultas agregadas de leitura sobre todo o portfólio:
// giro de estoque, curva ABC e capital de giro.
type PortfolioUseCase struct {
	produtoRepo   repository.ProdutoRepository
	movRepo       repository.MovimentoRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewPortfolioUseCase constrói o caso de uso.
func NewPortfolioUseCase(
	produtoRepo repository.ProdutoRepository,
	movRepo repository.MovimentoRepository,
	analyticsRepo repository.AnalyticsRepository,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		produtoRepo:   produtoRepo,
		movRepo:       movRepo,
		analyticsRepo: analyticsRepo,
	}
}

// Giro aproxima o giro de estoque da janela: COGS = soma das SAIDAs de
// cada produto valorizada ao preço médio corrente, usado como aproximação
// do custo histórico; estoque médio = soma das médias dos saldos
// registrados nos movimentos da janela.
func (uc *PortfolioUseCase) Giro(ctx context.Context, dias int) (*dto.GiroResponse, error) {
	if dias <= 0 {
		dias = JanelaGiroPadrao
	}
	desde := time.Now().AddDate(0, 0, -dias)

	produtos, err := uc.produtoRepo.List()
	if err != nil {
		return nil, err
	}

	cogs := decimal.Zero
	estoqueMedio := decimal.Zero
	for _, p := range produtos {
		qtdSaida, err := uc.movRepo.SumQuantidade(p.ID, entity.TipoSaida, desde)
		if err != nil {
			return nil, err
		}
		cogs = cogs.Add(qtdSaida.Mul(p.PrecoMedio))

		avg, err := uc.movRepo.AvgSaldo(p.ID, desde)
		if err != nil {
			return nil, err
		}
		estoqueMedio = estoqueMedio.Add(avg)
	}

	giro := decimal.Zero
	if estoqueMedio.GreaterThan(decimal.Zero) {
		giro = cogs.Div(estoqueMedio)
	}

	return &dto.GiroResponse{
		PeriodoDias:       dias,
		CogsAprox:         cogs.Round(2),
		EstoqueMedioAprox: estoqueMedio.Round(2),
		Giro:              giro.Round(2),
	}, nil
}

// CurvaABC classifica os produtos pelo valor consumido na janela
// (qtd de SAIDA * preço médio corrente), em ordem decrescente de valor:
// classe A enquanto o acumulado <= 80%, B enquanto <= 95%, C no restante.
// A classe usa o acumulado sem arredondar; perc/acumulado saem com 2 casas.
func (uc *PortfolioUseCase) CurvaABC(ctx context.Context, dias int) ([]dto.CurvaABCItem, error) {
	if dias <= 0 {
		dias = JanelaABCPadrao
	}
	desde := time.Now().AddDate(0, 0, -dias)

	rows, err := uc.analyticsRepo.SaidasPorProduto(desde)
	if err != nil {
		return nil, err
	}

	type itemValor struct {
		row   repository.SaidaPorProduto
		valor decimal.Decimal
	}
	itens := make([]itemValor, 0, len(rows))
	totalValor := decimal.Zero
	for _, r := range rows {
		valor := r.QtdSaida.Mul(r.PrecoMedio)
		totalValor = totalValor.Add(valor)
		itens = append(itens, itemValor{row: r, valor: valor})
	}

	// Empates mantêm a ordem de enumeração subjacente (sort estável).
	sort.SliceStable(itens, func(i, j int) bool {
		return itens[i].valor.GreaterThan(itens[j].valor)
	})

	out := make([]dto.CurvaABCItem, 0, len(itens))
	acumulado := decimal.Zero
	for _, it := range itens {
		perc := decimal.Zero
		if totalValor.GreaterThan(decimal.Zero) {
			perc = it.valor.Div(totalValor).Mul(cem)
		}
		acumulado = acumulado.Add(perc)

		classe := "C"
		switch {
		case acumulado.LessThanOrEqual(limiteClasseA):
			classe = "A"
		case acumulado.LessThanOrEqual(limiteClasseB):
			classe = "B"
		}

		out = append(out, dto.CurvaABCItem{
			ProdutoID: it.row.ProdutoID,
			Descricao: it.row.Descricao,
			Valor:     it.valor.Round(2),
			Perc:      perc.Round(2),
			Acumulado: acumulado.Round(2),
			Classe:    classe,
		})
	}
	return out, nil
}

// CapitalDeGiro estima o capital de giro como o valor instantâneo do
// estoque (soma de estoque_atual * preco_medio). Contas a pagar/receber
// ficam zeradas: não há módulo financeiro neste sistema.
func (uc *PortfolioUseCase) CapitalDeGiro(ctx context.Context, dias int) (*dto.CapitalDeGiroResponse, error) {
	if dias <= 0 {
		dias = JanelaCapitalPadrao
	}
	valorEstoque, err := uc.analyticsRepo.ValorEstoqueTotal()
	if err != nil {
		return nil, err
	}
	return &dto.CapitalDeGiroResponse{
		Dias:             dias,
		ValorEstoque:     valorEstoque,
		ContasPagar:      decimal.Zero,
		ContasReceber:    decimal.Zero,
		CapitalGiroAprox: valorEstoque,
	}, nil
}
