package nfe

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/importer"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
)

var _ importer.NFEParser = (*Parser)(nil)

// Parser lê o XML de uma NF-e (modelo 55) e extrai os itens det/prod em
// registros normalizados. O seletor de caminho do etree ignora prefixo de
// namespace, então funciona com e sem o namespace do Portal Fiscal.
type Parser struct{}

// NewParser cria o parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse extrai os itens da NF-e. Itens sem nó prod são ignorados.
func (p *Parser) Parse(r io.Reader) ([]dto.RegistroImportacao, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("ler XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("documento sem elemento raiz")
	}

	var registros []dto.RegistroImportacao
	for _, det := range doc.FindElements("//det") {
		prod := det.SelectElement("prod")
		if prod == nil {
			continue
		}
		registros = append(registros, dto.RegistroImportacao{
			Codigo:     texto(prod, "cProd"),
			EAN:        texto(prod, "cEAN"),
			Descricao:  textoOu(prod, "xProd", "SEM DESCRICAO"),
			NCM:        texto(prod, "NCM"),
			Unidade:    textoOu(prod, "uCom", entity.UnidadePadrao),
			Tipo:       entity.TipoEntrada,
			Quantidade: numero(prod, "qCom"),
			PrecoUnit:  numero(prod, "vUnCom"),
		})
	}
	return registros, nil
}

func texto(e *etree.Element, tag string) string {
	child := e.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func textoOu(e *etree.Element, tag, padrao string) string {
	if v := texto(e, tag); v != "" {
		return v
	}
	return padrao
}

// numero converte o texto do elemento em decimal; vazio ou ilegível vira 0.
func numero(e *etree.Element, tag string) decimal.Decimal {
	v := texto(e, tag)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
