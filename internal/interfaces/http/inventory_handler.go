package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/inventory"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
)

// InventoryHandler trata as requisições HTTP de movimentos e reposição.
type InventoryHandler struct {
	registrar *inventory.RegistrarMovimentoUseCase
	reposicao *inventory.ReposicaoUseCase
	diario    *inventory.DiarioUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(
	registrar *inventory.RegistrarMovimentoUseCase,
	reposicao *inventory.ReposicaoUseCase,
	diario *inventory.DiarioUseCase,
) *InventoryHandler {
	return &InventoryHandler{registrar: registrar, reposicao: reposicao, diario: diario}
}

// RegistrarMovimento godoc
// @Summary      Lançar movimento de estoque
// @Tags         movimentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentoRequest  true  "produto_id, tipo (ENTRADA|SAIDA|AJUSTE), quantidade, preco_unit (entradas)"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /movimentos [post]
func (h *InventoryHandler) RegistrarMovimento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.registrar.Registrar(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo inválido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// SugestaoCompra godoc
// @Summary      Sugestão de compra do produto
// @Description  estoque_min = consumo*lead_time; estoque_max = min*fator; sugestao = max(0, max - atual)
// @Tags         movimentos
// @Produce      json
// @Param        produto_id  path  string  true  "ID do produto"
// @Success      200  {object}  dto.SugestaoCompraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /sugestoes-compra/{produto_id} [get]
func (h *InventoryHandler) SugestaoCompra(c *fiber.Ctx) error {
	produtoID := c.Params("produto_id")
	out, err := h.reposicao.Sugerir(c.Context(), produtoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListarMovimentos godoc
// @Summary      Histórico de movimentos do produto
// @Tags         movimentos
// @Produce      json
// @Param        produto_id  path   string  true   "ID do produto"
// @Param        limit       query  int     false  "Limite"  default(50)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}   dto.MovimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /movimentos/{produto_id} [get]
func (h *InventoryHandler) ListarMovimentos(c *fiber.Ctx) error {
	produtoID := c.Params("produto_id")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.diario.ListarPorProduto(c.Context(), produtoID, limit, offset)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
