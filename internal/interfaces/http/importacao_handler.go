package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/dto"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/application/importer"
	"github.com/marcoaureliolouz/COONTROLE-DE-ESTOQUE-2/internal/domain"
)

// ImportacaoHandler trata o upload dos documentos de importação em massa.
type ImportacaoHandler struct {
	uc *importer.ImportacaoUseCase
}

// NewImportacaoHandler constrói o handler.
func NewImportacaoHandler(uc *importer.ImportacaoUseCase) *ImportacaoHandler {
	return &ImportacaoHandler{uc: uc}
}

// ImportarXML godoc
// @Summary      Importar NF-e (XML)
// @Tags         importacao
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo XML da NF-e"
// @Success      200   {object}  dto.ImportacaoXMLResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /import/xml-nfe [post]
func (h *ImportacaoHandler) ImportarXML(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "arquivo 'file' é obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()

	processados, err := h.uc.ImportarXML(c.Context(), fh.Filename, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_XML", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportacaoXMLResponse{ItensProcessados: processados})
}

// ImportarPlanilha godoc
// @Summary      Importar planilha (xlsx ou csv)
// @Tags         importacao
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Planilha com colunas codigo, descricao, tipo, quantidade"
// @Success      200   {object}  dto.ImportacaoPlanilhaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /import/excel [post]
func (h *ImportacaoHandler) ImportarPlanilha(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "arquivo 'file' é obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()

	processadas, err := h.uc.ImportarPlanilha(c.Context(), fh.Filename, f)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ImportacaoPlanilhaResponse{LinhasProcessadas: processadas})
}
