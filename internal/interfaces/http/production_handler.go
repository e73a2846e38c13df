package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/production"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// ProductionHandler serves the production stage endpoints: stage entry
// CRUD plus the lot carry-forward resolver.
type ProductionHandler struct {
	entries  *production.EntryUseCase
	resolver *production.LotResolver
}

// NewProductionHandler builds the handler.
func NewProductionHandler(entries *production.EntryUseCase, resolver *production.LotResolver) *ProductionHandler {
	return &ProductionHandler{entries: entries, resolver: resolver}
}

// CreateEntry godoc
// @Summary      Log a lot into a production stage
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStageEntryRequest  true  "module, lot_number, input_meter, ..."
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/entries [post]
func (h *ProductionHandler) CreateEntry(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateStageEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	e, err := h.entries.CreateEntry(c.Context(), companyID, userID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// RecordOutput godoc
// @Summary      Record processed and loss meters of an entry
// @Description  Values are absolute replacements, not deltas, and may never decrease.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Stage entry ID"
// @Param        body  body  dto.RecordOutputRequest  true  "processed_meter, loss_meter"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/entries/{id}/output [put]
func (h *ProductionHandler) RecordOutput(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.RecordOutputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	e, err := h.entries.RecordOutput(c.Context(), companyID, c.Params("id"), in.ProcessedMeter, in.LossMeter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(e)
}

// QuickComplete godoc
// @Summary      Complete an entry, processing all remaining input
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Stage entry ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/production/entries/{id}/complete [post]
func (h *ProductionHandler) QuickComplete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	e, err := h.entries.QuickComplete(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(e)
}

// GetEntry godoc
// @Summary      Get one stage entry
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Stage entry ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/entries/{id} [get]
func (h *ProductionHandler) GetEntry(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	e, err := h.entries.Get(c.Context(), companyID, c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(e)
}

// ListEntries godoc
// @Summary      List stage entries of one module
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        module      query  string  true   "Production module"
// @Param        lot_number  query  string  false  "Lot number"
// @Param        status      query  string  false  "pending|in_progress|completed"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/production/entries [get]
func (h *ProductionHandler) ListEntries(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var q dto.StageEntryListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	q.DefaultPage()
	f := repository.StageEntryFilter{LotNumber: q.LotNumber, Status: q.Status}
	list, err := h.entries.List(c.Context(), companyID, entity.Module(q.Module), f, q.Limit, q.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "entries": list})
}

// LotDetails godoc
// @Summary      Descriptive details of a lot, inherited from the first upstream stage
// @Description  Returns lot_details: null when no stage has recorded the lot yet.
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        lotNumber  path  string  true  "Lot number"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/production/lot/{lotNumber}/details [get]
func (h *ProductionHandler) LotDetails(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	details, err := h.resolver.LotDetails(c.Context(), companyID, c.Params("lotNumber"))
	if err != nil {
		return errorResponse(c, err)
	}
	// A lot unknown to every stage is not an error: the client shows an
	// empty form and the operator types the details in.
	return c.JSON(fiber.Map{"lot_details": details})
}

// AvailableInputMeter godoc
// @Summary      Meters of a lot still available to carry into a target module
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        lotNumber     path  string  true  "Lot number"
// @Param        targetModule  path  string  true  "Target production module"
// @Success      200  {object}  dto.AvailableMeterResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/lot/{lotNumber}/input-meter/{targetModule} [get]
func (h *ProductionHandler) AvailableInputMeter(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	lot := c.Params("lotNumber")
	target := entity.Module(c.Params("targetModule"))
	available, err := h.resolver.AvailableInputMeter(c.Context(), companyID, lot, target)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.AvailableMeterResponse{
		LotNumber:      lot,
		TargetModule:   string(target),
		AvailableMeter: available,
	})
}
