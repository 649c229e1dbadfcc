package analytics_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/analytics"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Fakes de leitura: os casos de uso de portfólio só consomem consultas.

type fakeProdutoRepo struct {
	produtos []*entity.Produto
}

func (r *fakeProdutoRepo) Create(*entity.Produto) error { return nil }
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	for _, p := range r.produtos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) { return r.GetByID(id) }
func (r *fakeProdutoRepo) GetByCodigo(string) (*entity.Produto, error)         { return nil, nil }
func (r *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, len(r.produtos))
	copy(out, r.produtos)
	sort.Slice(out, func(i, j int) bool { return out[i].Descricao < out[j].Descricao })
	return out, nil
}
func (r *fakeProdutoRepo) Update(*entity.Produto) error { return nil }
func (r *fakeProdutoRepo) UpdateValuation(string, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (r *fakeProdutoRepo) UpdateConsumo(string, decimal.Decimal) error { return nil }

type fakeMovimentoRepo struct {
	somaSaida map[string]decimal.Decimal
	avgSaldo  map[string]decimal.Decimal
}

func (r *fakeMovimentoRepo) Create(*entity.Movimento) error { return nil }
func (r *fakeMovimentoRepo) SumQuantidade(produtoID, tipo string, _ time.Time) (decimal.Decimal, error) {
	if tipo != entity.TipoSaida {
		return decimal.Zero, nil
	}
	return r.somaSaida[produtoID], nil
}
func (r *fakeMovimentoRepo) AvgSaldo(produtoID string, _ time.Time) (decimal.Decimal, error) {
	return r.avgSaldo[produtoID], nil
}
func (r *fakeMovimentoRepo) ListByProduto(string, int, int) ([]*entity.Movimento, error) {
	return nil, nil
}

type fakeAnalyticsRepo struct {
	saidas       []repository.SaidaPorProduto
	valorEstoque decimal.Decimal
}

func (r *fakeAnalyticsRepo) SaidasPorProduto(time.Time) ([]repository.SaidaPorProduto, error) {
	return r.saidas, nil
}
func (r *fakeAnalyticsRepo) ValorEstoqueTotal() (decimal.Decimal, error) {
	return r.valorEstoque, nil
}

// TestGiro_CalculoBasico: dois produtos, COGS = soma(qtd_saida * preço) e
// giro = COGS / estoque médio.
func TestGiro_CalculoBasico(t *testing.T) {
	prodRepo := &fakeProdutoRepo{produtos: []*entity.Produto{
		{ID: "a", Descricao: "ARROZ", PrecoMedio: dec("3.00")},
		{ID: "b", Descricao: "FEIJAO", PrecoMedio: dec("5.00")},
	}}
	movRepo := &fakeMovimentoRepo{
		somaSaida: map[string]decimal.Decimal{"a": dec("10"), "b": dec("4")},
		avgSaldo:  map[string]decimal.Decimal{"a": dec("20"), "b": dec("5")},
	}
	uc := analytics.NewPortfolioUseCase(prodRepo, movRepo, &fakeAnalyticsRepo{})

	out, err := uc.Giro(context.Background(), 30)
	require.NoError(t, err)

	assert.Equal(t, 30, out.PeriodoDias)
	assert.True(t, dec("50").Equal(out.CogsAprox), "COGS deve ser 10*3 + 4*5 = 50, obtido %s", out.CogsAprox)
	assert.True(t, dec("25").Equal(out.EstoqueMedioAprox), "estoque médio deve ser 20+5 = 25, obtido %s", out.EstoqueMedioAprox)
	assert.True(t, dec("2").Equal(out.Giro), "giro deve ser 50/25 = 2, obtido %s", out.Giro)
}

// TestGiro_EstoqueMedioZero: sem saldos na janela o giro é zero, nunca
// divisão por zero.
func TestGiro_EstoqueMedioZero(t *testing.T) {
	prodRepo := &fakeProdutoRepo{produtos: []*entity.Produto{
		{ID: "a", Descricao: "ARROZ", PrecoMedio: dec("3.00")},
	}}
	movRepo := &fakeMovimentoRepo{
		somaSaida: map[string]decimal.Decimal{"a": dec("10")},
		avgSaldo:  map[string]decimal.Decimal{},
	}
	uc := analytics.NewPortfolioUseCase(prodRepo, movRepo, &fakeAnalyticsRepo{})

	out, err := uc.Giro(context.Background(), 30)
	require.NoError(t, err)
	assert.True(t, out.Giro.IsZero())
	assert.True(t, dec("30").Equal(out.CogsAprox), "COGS continua calculado mesmo sem saldo médio")
}

func TestGiro_DiasInvalidoAssumePadrao(t *testing.T) {
	uc := analytics.NewPortfolioUseCase(&fakeProdutoRepo{}, &fakeMovimentoRepo{}, &fakeAnalyticsRepo{})
	out, err := uc.Giro(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, analytics.JanelaGiroPadrao, out.PeriodoDias)
}

// TestCurvaABC_LimitesInclusivos exercita os dois limites da classificação:
// acumulado 80 ainda é A e acumulado 95 ainda é B.
func TestCurvaABC_LimitesInclusivos(t *testing.T) {
	repo := &fakeAnalyticsRepo{saidas: []repository.SaidaPorProduto{
		{ProdutoID: "a", Descricao: "ARROZ", PrecoMedio: dec("1"), QtdSaida: dec("800")},
		{ProdutoID: "b", Descricao: "FEIJAO", PrecoMedio: dec("1"), QtdSaida: dec("150")},
		{ProdutoID: "c", Descricao: "SAL", PrecoMedio: dec("1"), QtdSaida: dec("50")},
	}}
	uc := analytics.NewPortfolioUseCase(&fakeProdutoRepo{}, &fakeMovimentoRepo{}, repo)

	out, err := uc.CurvaABC(context.Background(), 90)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "a", out[0].ProdutoID, "ordenação decrescente por valor")
	assert.Equal(t, "A", out[0].Classe, "acumulado exatamente 80 ainda é classe A")
	assert.True(t, dec("80").Equal(out[0].Acumulado))

	assert.Equal(t, "B", out[1].Classe, "acumulado exatamente 95 ainda é classe B")
	assert.True(t, dec("95").Equal(out[1].Acumulado))

	assert.Equal(t, "C", out[2].Classe)
	assert.True(t, dec("100").Equal(out[2].Acumulado), "o acumulado do último item fecha em 100")
}

// TestCurvaABC_Completude: todo item recebe exatamente uma classe e o
// acumulado final fecha em ~100 quando há valor.
func TestCurvaABC_Completude(t *testing.T) {
	repo := &fakeAnalyticsRepo{saidas: []repository.SaidaPorProduto{
		{ProdutoID: "a", Descricao: "A", PrecoMedio: dec("2.50"), QtdSaida: dec("13")},
		{ProdutoID: "b", Descricao: "B", PrecoMedio: dec("1.75"), QtdSaida: dec("7")},
		{ProdutoID: "c", Descricao: "C", PrecoMedio: dec("9.90"), QtdSaida: dec("3")},
		{ProdutoID: "d", Descricao: "D", PrecoMedio: dec("0.99"), QtdSaida: dec("100")},
	}}
	uc := analytics.NewPortfolioUseCase(&fakeProdutoRepo{}, &fakeMovimentoRepo{}, repo)

	out, err := uc.CurvaABC(context.Background(), 90)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for _, item := range out {
		assert.Contains(t, []string{"A", "B", "C"}, item.Classe)
	}
	ultimo := out[len(out)-1]
	diff := ultimo.Acumulado.Sub(dec("100")).Abs()
	assert.True(t, diff.LessThan(dec("0.05")),
		"acumulado final deve fechar em ~100, obtido %s", ultimo.Acumulado)
}

// TestCurvaABC_SemValor: sem consumo na janela não há divisão por zero e
// todos os percentuais saem zerados.
func TestCurvaABC_SemValor(t *testing.T) {
	repo := &fakeAnalyticsRepo{saidas: []repository.SaidaPorProduto{
		{ProdutoID: "a", Descricao: "ARROZ", PrecoMedio: dec("3.00"), QtdSaida: decimal.Zero},
	}}
	uc := analytics.NewPortfolioUseCase(&fakeProdutoRepo{}, &fakeMovimentoRepo{}, repo)

	out, err := uc.CurvaABC(context.Background(), 90)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Perc.IsZero())
	assert.Equal(t, "A", out[0].Classe, "acumulado zero fica na banda A")
}

// TestCapitalDeGiro: fotografia do valor de estoque; dias é ecoado e contas
// a pagar/receber saem zeradas.
func TestCapitalDeGiro(t *testing.T) {
	repo := &fakeAnalyticsRepo{valorEstoque: dec("1234.56")}
	uc := analytics.NewPortfolioUseCase(&fakeProdutoRepo{}, &fakeMovimentoRepo{}, repo)

	out, err := uc.CapitalDeGiro(context.Background(), 45)
	require.NoError(t, err)

	assert.Equal(t, 45, out.Dias, "dias é ecoado sem afetar o cálculo")
	assert.True(t, dec("1234.56").Equal(out.ValorEstoque))
	assert.True(t, dec("1234.56").Equal(out.CapitalGiroAprox))
	assert.True(t, out.ContasPagar.IsZero())
	assert.True(t, out.ContasReceber.IsZero())
}
