package importer

import (
	"io"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
)

// NFEParser extrai os itens (det/prod) de uma NF-e em registros
// normalizados. Erro significa documento ilegível; a importação inteira
// é abortada.
type NFEParser interface {
	Parse(r io.Reader) ([]dto.RegistroImportacao, error)
}

// PlanilhaParser extrai as linhas de uma planilha (xlsx ou csv) em
// registros normalizados. Erro significa arquivo ilegível ou colunas
// obrigatórias ausentes.
type PlanilhaParser interface {
	Parse(r io.Reader) ([]dto.RegistroImportacao, error)
}
