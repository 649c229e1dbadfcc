package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimento de estoque.
const (
	TipoEntrada = "ENTRADA"
	TipoSaida   = "SAIDA"
	TipoAjuste  = "AJUSTE"
)

// Origens de um movimento.
const (
	OrigemXML    = "XML"
	OrigemExcel  = "EXCEL"
	OrigemManual = "MANUAL"
)

// TipoValido informa se o tipo é um dos três tipos reconhecidos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSaida, TipoAjuste:
		return true
	}
	return false
}

// Movimento é um fato imutável: uma alteração de estoque aplicada a um
// produto. Depois de gravado nunca é alterado nem removido; é a única
// fonte de verdade para consumo e analytics.
//
// Saldo guarda o estoque resultante após aplicar o movimento, para que a
// consulta de estoque médio na janela tenha um valor registrado concreto.
type Movimento struct {
	ID         string
	ProdutoID  string
	Tipo       string          // ENTRADA | SAIDA | AJUSTE
	Quantidade decimal.Decimal // sinal relevante apenas em AJUSTE
	PrecoUnit  decimal.Decimal // usado só para custo de ENTRADA
	Origem     string          // XML | EXCEL | MANUAL
	Documento  string          // referência livre (ex.: nome do arquivo)
	Saldo      decimal.Decimal
	DataMov    time.Time
}
