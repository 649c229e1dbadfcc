package usecase_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/usecase"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
)

type fakeProdutoRepo struct {
	porID map[string]*entity.Produto
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{porID: make(map[string]*entity.Produto)}
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	if p.Codigo != "" {
		for _, existente := range r.porID {
			if existente.Codigo == p.Codigo {
				return domain.ErrDuplicate
			}
		}
	}
	r.porID[p.ID] = p
	return nil
}
func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) { return r.porID[id], nil }
func (r *fakeProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.porID[id], nil
}
func (r *fakeProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	for _, p := range r.porID {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.porID))
	for _, p := range r.porID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descricao < out[j].Descricao })
	return out, nil
}
func (r *fakeProdutoRepo) Update(p *entity.Produto) error {
	r.porID[p.ID] = p
	return nil
}
func (r *fakeProdutoRepo) UpdateValuation(string, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (r *fakeProdutoRepo) UpdateConsumo(string, decimal.Decimal) error { return nil }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestCreate_AplicaPadroes: produto novo nasce com valoração zerada e os
// padrões de reposição (UN, lead time 7, fator 1.2).
func TestCreate_AplicaPadroes(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())

	out, err := uc.Create(dto.CreateProdutoRequest{Codigo: "100", Descricao: "ARROZ 5KG"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.UnidadePadrao, out.Unidade)
	assert.Equal(t, entity.LeadTimePadraoDias, out.LeadTimeDias)
	assert.True(t, dec("1.2").Equal(out.FatorSeguranca), "fator de segurança padrão 1.2, obtido %s", out.FatorSeguranca)
	assert.True(t, out.EstoqueAtual.IsZero(), "estoque nasce zerado; só o motor de movimentos o altera")
	assert.True(t, out.PrecoMedio.IsZero())
}

func TestCreate_RespeitaValoresInformados(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())

	out, err := uc.Create(dto.CreateProdutoRequest{
		Descricao:      "FARINHA",
		Unidade:        "KG",
		LeadTimeDias:   15,
		FatorSeguranca: dec("2.0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "KG", out.Unidade)
	assert.Equal(t, 15, out.LeadTimeDias)
	assert.True(t, dec("2.0").Equal(out.FatorSeguranca))
}

func TestCreate_SemDescricao(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "100"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())

	_, err := uc.Create(dto.CreateProdutoRequest{Codigo: "100", Descricao: "ARROZ"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProdutoRequest{Codigo: "100", Descricao: "OUTRO ARROZ"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestList_OrdenadoPorDescricao(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeProdutoRepo())
	for _, d := range []string{"FEIJAO", "ARROZ", "SAL"} {
		_, err := uc.Create(dto.CreateProdutoRequest{Descricao: d})
		require.NoError(t, err)
	}

	out, err := uc.List()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "ARROZ", out[0].Descricao)
	assert.Equal(t, "SAL", out[2].Descricao)
}

// TestUpsertPorCodigo_AtualizaSoCamposPresentes: campos vazios do registro
// não apagam os valores já cadastrados.
func TestUpsertPorCodigo_AtualizaSoCamposPresentes(t *testing.T) {
	repo := newFakeProdutoRepo()
	original, err := usecase.UpsertPorCodigo(repo, dto.RegistroImportacao{
		Codigo: "100", EAN: "7891000100103", Descricao: "LEITE UHT", NCM: "04012010", Unidade: "UN",
	})
	require.NoError(t, err)

	atualizado, err := usecase.UpsertPorCodigo(repo, dto.RegistroImportacao{
		Codigo: "100", Descricao: "LEITE UHT INTEGRAL",
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, atualizado.ID, "mesmo código deve reutilizar o produto")
	assert.Equal(t, "LEITE UHT INTEGRAL", atualizado.Descricao)
	assert.Equal(t, "7891000100103", atualizado.EAN, "EAN ausente no registro não apaga o cadastrado")
	assert.Equal(t, "04012010", atualizado.NCM)
}

func TestUpsertPorCodigo_CodigoVazioSempreCria(t *testing.T) {
	repo := newFakeProdutoRepo()

	a, err := usecase.UpsertPorCodigo(repo, dto.RegistroImportacao{Descricao: "AVULSO"})
	require.NoError(t, err)
	b, err := usecase.UpsertPorCodigo(repo, dto.RegistroImportacao{Descricao: "AVULSO"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID, "sem código não há chave de upsert; cada registro cria um produto")
}

func TestUpsertPorCodigo_DescricaoFallback(t *testing.T) {
	repo := newFakeProdutoRepo()
	p, err := usecase.UpsertPorCodigo(repo, dto.RegistroImportacao{Codigo: "999"})
	require.NoError(t, err)
	assert.Equal(t, "SEM DESCRICAO", p.Descricao)
	assert.Equal(t, entity.UnidadePadrao, p.Unidade)
	assert.Equal(t, entity.LeadTimePadraoDias, p.LeadTimeDias)
}
