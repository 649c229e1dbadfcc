package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/analytics"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/importer"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/inventory"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC  *usecase.ProdutoUseCase
	Registrar  *inventory.RegistrarMovimentoUseCase
	Reposicao  *inventory.ReposicaoUseCase
	Diario     *inventory.DiarioUseCase
	Importacao *importer.ImportacaoUseCase
	Portfolio  *analytics.PortfolioUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	app.Get("/produtos", produtoHandler.List)
	app.Post("/produtos", produtoHandler.Create)
	app.Get("/produtos/:id", produtoHandler.GetByID)

	inventoryHandler := NewInventoryHandler(deps.Registrar, deps.Reposicao, deps.Diario)
	app.Post("/movimentos", inventoryHandler.RegistrarMovimento)
	app.Get("/movimentos/:produto_id", inventoryHandler.ListarMovimentos)
	app.Get("/sugestoes-compra/:produto_id", inventoryHandler.SugestaoCompra)

	importacaoHandler := NewImportacaoHandler(deps.Importacao)
	app.Post("/import/xml-nfe", importacaoHandler.ImportarXML)
	app.Post("/import/excel", importacaoHandler.ImportarPlanilha)

	analyticsHandler := NewAnalyticsHandler(deps.Portfolio)
	app.Get("/giro", analyticsHandler.Giro)
	app.Get("/abc", analyticsHandler.CurvaABC)
	app.Get("/capital-de-giro", analyticsHandler.CapitalDeGiro)
}
