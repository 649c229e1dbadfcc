package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

// Fakes em memória com a mesma semântica dos repositórios Postgres:
// lookups devolvem (nil, nil) quando não há linha, somas devolvem zero.

type fakeProdutoRepo struct {
	porID map[string]*entity.Produto
}

func newFakeProdutoRepo(produtos ...*entity.Produto) *fakeProdutoRepo {
	repo := &fakeProdutoRepo{porID: make(map[string]*entity.Produto)}
	for _, p := range produtos {
		repo.porID[p.ID] = p
	}
	return repo
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

func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.porID[id], nil
}

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

func (r *fakeProdutoRepo) UpdateValuation(id string, estoqueAtual, precoMedio decimal.Decimal) error {
	p, ok := r.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.EstoqueAtual = estoqueAtual
	p.PrecoMedio = precoMedio
	p.AtualizadoEm = time.Now()
	return nil
}

func (r *fakeProdutoRepo) UpdateConsumo(id string, consumoMedioDia decimal.Decimal) error {
	p, ok := r.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.ConsumoMedioDia = consumoMedioDia
	return nil
}

type fakeMovimentoRepo struct {
	movimentos []*entity.Movimento
}

func (r *fakeMovimentoRepo) Create(m *entity.Movimento) error {
	r.movimentos = append(r.movimentos, m)
	return nil
}

func (r *fakeMovimentoRepo) SumQuantidade(produtoID, tipo string, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movimentos {
		if m.ProdutoID == produtoID && m.Tipo == tipo && !m.DataMov.Before(desde) {
			total = total.Add(m.Quantidade)
		}
	}
	return total, nil
}

func (r *fakeMovimentoRepo) AvgSaldo(produtoID string, desde time.Time) (decimal.Decimal, error) {
	soma := decimal.Zero
	n := 0
	for _, m := range r.movimentos {
		if m.ProdutoID == produtoID && !m.DataMov.Before(desde) {
			soma = soma.Add(m.Saldo)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero, nil
	}
	return soma.Div(decimal.NewFromInt(int64(n))), nil
}

func (r *fakeMovimentoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.Movimento, error) {
	filtrados := make([]*entity.Movimento, 0)
	for _, m := range r.movimentos {
		if m.ProdutoID == produtoID {
			filtrados = append(filtrados, m)
		}
	}
	sort.SliceStable(filtrados, func(i, j int) bool { return filtrados[i].DataMov.After(filtrados[j].DataMov) })
	if offset >= len(filtrados) {
		return nil, nil
	}
	filtrados = filtrados[offset:]
	if limit < len(filtrados) {
		filtrados = filtrados[:limit]
	}
	return filtrados, nil
}

// fakeTxRunner executa a unidade de trabalho diretamente sobre os fakes,
// sem transação real.
type fakeTxRunner struct {
	mov  *fakeMovimentoRepo
	prod *fakeProdutoRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovimentoRepository, repository.ProdutoRepository) error) error {
	return fn(t.mov, t.prod)
}
