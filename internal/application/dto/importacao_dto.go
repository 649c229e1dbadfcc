package dto

import "github.com/shopspring/decimal"

// RegistroImportacao linha normalizada extraída de um documento de
// importação (NF-e ou planilha). O núcleo nunca inspeciona a estrutura
// bruta do XML/tabela; os parsers entregam sempre este formato fixo.
type RegistroImportacao struct {
	Codigo     string
	EAN        string
	Descricao  string
	NCM        string
	Unidade    string
	Tipo       string
	Quantidade decimal.Decimal
	PrecoUnit  decimal.Decimal
}

// ImportacaoXMLResponse resultado da importação de NF-e.
type ImportacaoXMLResponse struct {
	ItensProcessados int `json:"itens_processados"`
}

// ImportacaoPlanilhaResponse resultado da importação de planilha.
type ImportacaoPlanilhaResponse struct {
	LinhasProcessadas int `json:"linhas_processadas"`
}
