package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/analytics"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/importer"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/inventory"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/usecase"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/infrastructure/nfe"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/infrastructure/planilha"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/infrastructure/postgres"
	httpRouter "github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/interfaces/http"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/pkg/config"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do schema")
	}

	produtoRepo := postgres.NewProdutoRepository(pool)
	movimentoRepo := postgres.NewMovimentoRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	registrarUC := inventory.NewRegistrarMovimentoUseCase(txRunner)
	reposicaoUC := inventory.NewReposicaoUseCase(produtoRepo)
	diarioUC := inventory.NewDiarioUseCase(movimentoRepo, produtoRepo)
	portfolioUC := appanalytics.NewPortfolioUseCase(produtoRepo, movimentoRepo, analyticsRepo)
	importacaoUC := importer.NewImportacaoUseCase(txRunner, nfe.NewParser(), planilha.NewParser())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Controle de Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:  produtoUC,
		Registrar:  registrarUC,
		Reposicao:  reposicaoUC,
		Diario:     diarioUC,
		Importacao: importacaoUC,
		Portfolio:  portfolioUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
