package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DDL mínimo, idempotente, executado na subida do processo.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS produtos (
	id                VARCHAR(36) PRIMARY KEY,
	codigo            VARCHAR(64) UNIQUE,
	ean               VARCHAR(32),
	descricao         TEXT NOT NULL,
	ncm               VARCHAR(16),
	unidade           VARCHAR(8) NOT NULL DEFAULT 'UN',
	preco_medio       NUMERIC(14,4) NOT NULL DEFAULT 0,
	estoque_atual     NUMERIC(14,4) NOT NULL DEFAULT 0,
	consumo_medio_dia NUMERIC(14,4) NOT NULL DEFAULT 0,
	lead_time_dias    INT NOT NULL DEFAULT 7,
	fator_seguranca   NUMERIC(6,2) NOT NULL DEFAULT 1.2,
	criado_em         TIMESTAMPTZ NOT NULL DEFAULT now(),
	atualizado_em     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS movimentos (
	id         VARCHAR(36) PRIMARY KEY,
	produto_id VARCHAR(36) NOT NULL REFERENCES produtos(id) ON DELETE CASCADE,
	tipo       VARCHAR(16) NOT NULL,
	quantidade NUMERIC(14,4) NOT NULL,
	preco_unit NUMERIC(14,4) NOT NULL DEFAULT 0,
	origem     VARCHAR(32),
	documento  VARCHAR(128),
	saldo      NUMERIC(14,4) NOT NULL DEFAULT 0,
	data_mov   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_movimentos_produto_tipo_data
	ON movimentos (produto_id, tipo, data_mov);
`

// Migrate cria o esquema se não existir. Roda na subida do processo.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("criar esquema: %w", err)
	}
	return nil
}
