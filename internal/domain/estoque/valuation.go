package estoque

import (
	"github.com/shopspring/decimal"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain/entity"
)

// CustoMedioPonderado implementa a regra de custo médio ponderado móvel
// (serviço de domínio).
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
// Se o estoque resultante for <= 0 o custo atual é mantido.
func CustoMedioPonderado(estoqueAtual, custoAtual, qtdEntrada, custoEntrada decimal.Decimal) decimal.Decimal {
	novoEstoque := estoqueAtual.Add(qtdEntrada)
	if novoEstoque.LessThanOrEqual(decimal.Zero) {
		return custoAtual
	}
	total := estoqueAtual.Mul(custoAtual).Add(qtdEntrada.Mul(custoEntrada))
	return total.Div(novoEstoque)
}

// AplicarMovimento calcula o novo par (estoque, preço médio) resultante de
// um movimento. Regra central do motor de valoração:
//
//   - ENTRADA: soma a quantidade e reprecifica pelo custo médio ponderado.
//   - SAIDA:   subtrai a quantidade com piso em zero; nunca reprecifica.
//   - AJUSTE:  quantidade com sinal, piso em zero; nunca reprecifica.
//
// Uma SAIDA maior que o estoque atual trava em zero em vez de falhar.
// Tipos desconhecidos não alteram o estado.
func AplicarMovimento(tipo string, estoqueAtual, precoMedio, quantidade, precoUnit decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch tipo {
	case entity.TipoEntrada:
		return estoqueAtual.Add(quantidade), CustoMedioPonderado(estoqueAtual, precoMedio, quantidade, precoUnit)
	case entity.TipoSaida:
		return pisoZero(estoqueAtual.Sub(quantidade)), precoMedio
	case entity.TipoAjuste:
		return pisoZero(estoqueAtual.Add(quantidade)), precoMedio
	}
	return estoqueAtual, precoMedio
}

func pisoZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
