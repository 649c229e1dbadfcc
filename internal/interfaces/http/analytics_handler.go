package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/analytics"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
)

// AnalyticsHandler trata as consultas de saúde do portfólio.
type AnalyticsHandler struct {
	uc *analytics.PortfolioUseCase
}

// NewAnalyticsHandler constrói o handler.
func NewAnalyticsHandler(uc *analytics.PortfolioUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Giro godoc
// @Summary      Giro de estoque aproximado
// @Tags         analytics
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(30)
// @Success      200  {object}  dto.GiroResponse
// @Router       /giro [get]
func (h *AnalyticsHandler) Giro(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", analytics.JanelaGiroPadrao)
	out, err := h.uc.Giro(c.Context(), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CurvaABC godoc
// @Summary      Curva ABC por valor consumido
// @Tags         analytics
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(90)
// @Success      200  {array}  dto.CurvaABCItem
// @Router       /abc [get]
func (h *AnalyticsHandler) CurvaABC(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", analytics.JanelaABCPadrao)
	out, err := h.uc.CurvaABC(c.Context(), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CapitalDeGiro godoc
// @Summary      Estimativa de capital de giro
// @Tags         analytics
// @Produce      json
// @Param        dias  query  int  false  "Aceito por compatibilidade; não janela o cálculo"  default(30)
// @Success      200  {object}  dto.CapitalDeGiroResponse
// @Router       /capital-de-giro [get]
func (h *AnalyticsHandler) CapitalDeGiro(c *fiber.Ctx) error {
	dias := c.QueryInt("dias", analytics.JanelaCapitalPadrao)
	out, err := h.uc.CapitalDeGiro(c.Context(), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
