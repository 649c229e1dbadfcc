package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação do diário de movimentos sobre PostgreSQL
// (usável com pool ou tx). Apenas insere; nunca altera nem remove.
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create persiste um movimento no diário.
func (r *MovimentoRepo) Create(m *entity.Movimento) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentos (id, produto_id, tipo, quantidade, preco_unit, origem, documento, saldo, data_mov)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProdutoID, m.Tipo, m.Quantidade, m.PrecoUnit,
		nullable(m.Origem), nullable(m.Documento), m.Saldo, m.DataMov,
	)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// SumQuantidade soma as quantidades do tipo dado a partir de desde.
func (r *MovimentoRepo) SumQuantidade(produtoID, tipo string, desde time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(quantidade), 0)
		FROM movimentos
		WHERE produto_id = $1 AND tipo = $2 AND data_mov >= $3`,
		produtoID, tipo, desde,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum quantidade: %w", err)
	}
	return total, nil
}

// AvgSaldo média dos saldos registrados nos movimentos da janela.
func (r *MovimentoRepo) AvgSaldo(produtoID string, desde time.Time) (decimal.Decimal, error) {
	var avg decimal.Decimal
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(AVG(saldo), 0)
		FROM movimentos
		WHERE produto_id = $1 AND data_mov >= $2`,
		produtoID, desde,
	).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("avg saldo: %w", err)
	}
	return avg, nil
}

// ListByProduto lista movimentos de um produto, mais recentes primeiro.
func (r *MovimentoRepo) ListByProduto(produtoID string, limit, offset int) ([]*entity.Movimento, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, produto_id, tipo, quantidade, preco_unit, origem, documento, saldo, data_mov
		FROM movimentos
		WHERE produto_id = $1
		ORDER BY data_mov DESC
		LIMIT $2 OFFSET $3`,
		produtoID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movimento
	for rows.Next() {
		var m entity.Movimento
		var origem, documento *string
		if err := rows.Scan(&m.ID, &m.ProdutoID, &m.Tipo, &m.Quantidade, &m.PrecoUnit,
			&origem, &documento, &m.Saldo, &m.DataMov); err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		m.Origem = fromNullable(origem)
		m.Documento = fromNullable(documento)
		list = append(list, &m)
	}
	return list, rows.Err()
}
