package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = `id, codigo, ean, descricao, ncm, unidade, preco_medio, estoque_atual, consumo_medio_dia, lead_time_dias, fator_seguranca, criado_em, atualizado_em`

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um produto novo.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (` + produtoColunas + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, nullable(p.Codigo), nullable(p.EAN), p.Descricao, nullable(p.NCM), p.Unidade,
		p.PrecoMedio, p.EstoqueAtual, p.ConsumoMedioDia, p.LeadTimeDias, p.FatorSeguranca,
		p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoColunas+` FROM produtos WHERE id = $1`, id)
}

// GetByIDForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Só tem efeito dentro de uma transação.
func (r *ProdutoRepo) GetByIDForUpdate(id string) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoColunas+` FROM produtos WHERE id = $1 FOR UPDATE`, id)
}

// GetByCodigo obtém um produto pelo código externo.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoColunas+` FROM produtos WHERE codigo = $1`, codigo)
}

func (r *ProdutoRepo) get(query string, arg any) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// List lista todos os produtos ordenados por descrição.
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos ORDER BY descricao`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update atualiza os campos descritivos e de reposição do produto.
// Valoração e consumo têm escritas dedicadas.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos
		SET codigo = $2, ean = $3, descricao = $4, ncm = $5, unidade = $6,
		    lead_time_dias = $7, fator_seguranca = $8, atualizado_em = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, nullable(p.Codigo), nullable(p.EAN), p.Descricao, nullable(p.NCM), p.Unidade,
		p.LeadTimeDias, p.FatorSeguranca, p.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateValuation grava a projeção (estoque, preço médio) mantida pelo
// motor de movimentos.
func (r *ProdutoRepo) UpdateValuation(id string, estoqueAtual, precoMedio decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_atual = $2, preco_medio = $3, atualizado_em = now() WHERE id = $1`,
		id, estoqueAtual, precoMedio,
	)
	if err != nil {
		return fmt.Errorf("update valoração: %w", err)
	}
	return nil
}

// UpdateConsumo grava o consumo médio diário derivado da janela de SAIDAs.
func (r *ProdutoRepo) UpdateConsumo(id string, consumoMedioDia decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET consumo_medio_dia = $2 WHERE id = $1`,
		id, consumoMedioDia,
	)
	if err != nil {
		return fmt.Errorf("update consumo: %w", err)
	}
	return nil
}

func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var codigo, ean, ncm *string
	err := row.Scan(
		&p.ID, &codigo, &ean, &p.Descricao, &ncm, &p.Unidade,
		&p.PrecoMedio, &p.EstoqueAtual, &p.ConsumoMedioDia,
		&p.LeadTimeDias, &p.FatorSeguranca, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	p.Codigo = fromNullable(codigo)
	p.EAN = fromNullable(ean)
	p.NCM = fromNullable(ncm)
	return &p, nil
}
