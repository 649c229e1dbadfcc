package planilha

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/importer"
)

var _ importer.PlanilhaParser = (*Parser)(nil)

// Colunas obrigatórias após normalização do cabeçalho.
var colunasObrigatorias = []string{"codigo", "descricao", "tipo", "quantidade"}

// Parser lê planilhas .xlsx (excelize) com fallback para CSV. Cabeçalhos
// são normalizados para minúsculas e sem acentos ("Descrição" casa com
// "descricao").
type Parser struct{}

// NewParser cria o parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extrai as linhas da planilha em registros normalizados.
// Linhas vazias ou com quantidade ilegível são ignoradas; a validação do
// tipo fica com o caso de uso de importação.
func (p *Parser) Parse(r io.Reader) ([]dto.RegistroImportacao, error) {
	conteudo, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ler arquivo: %w", err)
	}

	linhas, err := lerXLSX(bytes.NewReader(conteudo))
	if err != nil {
		linhas, err = lerCSV(bytes.NewReader(conteudo))
		if err != nil {
			return nil, fmt.Errorf("arquivo inválido (nem xlsx nem csv): %w", err)
		}
	}
	if len(linhas) == 0 {
		return nil, fmt.Errorf("planilha vazia")
	}

	colunas := make(map[string]int, len(linhas[0]))
	for i, c := range linhas[0] {
		colunas[normalizarCabecalho(c)] = i
	}
	for _, obrigatoria := range colunasObrigatorias {
		if _, ok := colunas[obrigatoria]; !ok {
			return nil, fmt.Errorf("planilha deve conter as colunas: %s", strings.Join(colunasObrigatorias, ", "))
		}
	}

	var registros []dto.RegistroImportacao
	for _, linha := range linhas[1:] {
		celula := func(coluna string) string {
			idx, ok := colunas[coluna]
			if !ok || idx >= len(linha) {
				return ""
			}
			return strings.TrimSpace(linha[idx])
		}
		if linhaVazia(linha) {
			continue
		}
		quantidade, ok := parseDecimal(celula("quantidade"))
		if !ok {
			continue
		}
		precoUnit, ok := parseDecimal(celula("preco_unit"))
		if !ok {
			precoUnit = decimal.Zero
		}

		registros = append(registros, dto.RegistroImportacao{
			Codigo:     celula("codigo"),
			EAN:        celula("ean"),
			Descricao:  celula("descricao"),
			NCM:        celula("ncm"),
			Unidade:    celula("unidade"),
			Tipo:       celula("tipo"),
			Quantidade: quantidade,
			PrecoUnit:  precoUnit,
		})
	}
	return registros, nil
}

func lerXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	return f.GetRows(sheets[0])
}

func lerCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// removerAcentos decompõe (NFD), remove as marcas combinantes e recompõe.
var removerAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizarCabecalho(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if limpo, _, err := transform.String(removerAcentos, s); err == nil {
		s = limpo
	}
	return s
}

func linhaVazia(linha []string) bool {
	for _, c := range linha {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDecimal aceita vírgula decimal ("1,50"); vazio vale zero.
func parseDecimal(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
