package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas sobre o portfólio em PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository constrói o adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SaidasPorProduto todos os produtos com o total de SAIDAs na janela.
// LEFT JOIN: produtos sem movimento entram com quantidade zero.
func (r *AnalyticsRepo) SaidasPorProduto(desde time.Time) ([]repository.SaidaPorProduto, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT p.id, p.descricao, p.preco_medio,
		       COALESCE(SUM(CASE WHEN m.tipo = 'SAIDA' THEN m.quantidade ELSE 0 END), 0) AS q_saida
		FROM produtos p
		LEFT JOIN movimentos m ON m.produto_id = p.id AND m.data_mov >= $1
		GROUP BY p.id, p.descricao, p.preco_medio`,
		desde,
	)
	if err != nil {
		return nil, fmt.Errorf("saídas por produto: %w", err)
	}
	defer rows.Close()

	var out []repository.SaidaPorProduto
	for rows.Next() {
		var s repository.SaidaPorProduto
		if err := rows.Scan(&s.ProdutoID, &s.Descricao, &s.PrecoMedio, &s.QtdSaida); err != nil {
			return nil, fmt.Errorf("scan saída por produto: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ValorEstoqueTotal soma estoque_atual * preco_medio de todos os produtos.
func (r *AnalyticsRepo) ValorEstoqueTotal() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(estoque_atual * preco_medio), 0) FROM produtos`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor do estoque: %w", err)
	}
	return total, nil
}
