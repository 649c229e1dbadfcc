package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores padrão aplicados na criação de um produto.
const (
	UnidadePadrao      = "UN"
	LeadTimePadraoDias = 7
)

// FatorSegurancaPadrao multiplicador padrão sobre o estoque mínimo (1.2).
var FatorSegurancaPadrao = decimal.NewFromFloat(1.2)

// Produto representa um item estocado do supermercado.
// PrecoMedio é o custo médio ponderado recalculado a cada ENTRADA;
// EstoqueAtual e ConsumoMedioDia são projeções mantidas pelo motor de
// movimentos; nunca editadas diretamente.
type Produto struct {
	ID              string
	Codigo          string // código externo, único quando presente
	EAN             string
	Descricao       string
	NCM             string
	Unidade         string
	PrecoMedio      decimal.Decimal
	EstoqueAtual    decimal.Decimal
	ConsumoMedioDia decimal.Decimal // unidades/dia, derivado da janela de SAIDAs
	LeadTimeDias    int
	FatorSeguranca  decimal.Decimal
	CriadoEm        time.Time
	AtualizadoEm    time.Time
}
