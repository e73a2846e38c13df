package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/scrap"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/repository"
)

// ScrapHandler serves the scrap ledger endpoints (protected).
type ScrapHandler struct {
	svc *scrap.Service
}

// NewScrapHandler builds the handler.
func NewScrapHandler(svc *scrap.Service) *ScrapHandler {
	return &ScrapHandler{svc: svc}
}

// MoveToScrap godoc
// @Summary      Move inventory to scrap
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        inventoryItemId  path  string  true  "Inventory item ID"
// @Param        body  body  dto.MoveToScrapRequest  true  "quantity, scrap_reason, optional warehouse_id / unit_cost"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scrap/inventory/{inventoryItemId}/move [post]
func (h *ScrapHandler) MoveToScrap(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.MoveToScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sc, err := h.svc.MoveToScrap(c.Context(), c.Params("inventoryItemId"), userID, companyID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sc)
}

// List godoc
// @Summary      List scrap records
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        status   query  string  false  "active|disposed|cancelled"
// @Param        reason   query  string  false  "Scrap reason"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/scrap [get]
func (h *ScrapHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var q dto.ScrapListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	q.DefaultPage()
	f := repository.ScrapFilter{
		InventoryItemID: q.InventoryItemID,
		Status:          q.Status,
		Reason:          q.Reason,
	}
	var err error
	if f.From, err = parseDate(q.DateFrom); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_from must be YYYY-MM-DD"})
	}
	if f.To, err = parseDate(q.DateTo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_to must be YYYY-MM-DD"})
	}
	list, err := h.svc.List(c.Context(), companyID, f, q.Limit, q.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "scraps": list})
}

// Summary godoc
// @Summary      Scrap summary (active, non-disposed)
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "YYYY-MM-DD"
// @Param        date_to    query  string  false  "YYYY-MM-DD"
// @Success      200  {object}  dto.ScrapSummaryResponse
// @Router       /api/scrap/summary [get]
func (h *ScrapHandler) Summary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	from, err := parseDate(c.Query("date_from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_from must be YYYY-MM-DD"})
	}
	to, err := parseDate(c.Query("date_to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "date_to must be YYYY-MM-DD"})
	}
	sum, err := h.svc.Summary(c.Context(), companyID, from, to)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sum)
}

// Get godoc
// @Summary      Get one scrap record
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Scrap ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/scrap/{id} [get]
func (h *ScrapHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	sc, err := h.svc.Get(c.Context(), c.Params("id"), companyID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sc)
}

// Update godoc
// @Summary      Update scrap descriptive fields
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Scrap ID"
// @Param        body  body  dto.UpdateScrapRequest  true  "scrap_reason_details, notes"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/scrap/{id} [put]
func (h *ScrapHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.UpdateScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sc, err := h.svc.Update(c.Context(), c.Params("id"), companyID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sc)
}

// Dispose godoc
// @Summary      Mark a scrap record disposed
// @Tags         scrap
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Scrap ID"
// @Param        body  body  dto.DisposeScrapRequest  true  "disposal_method, disposal_value"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/scrap/{id}/dispose [post]
func (h *ScrapHandler) Dispose(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.DisposeScrapRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	sc, err := h.svc.MarkDisposed(c.Context(), c.Params("id"), userID, companyID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sc)
}

// Cancel godoc
// @Summary      Cancel a scrap record (restores stock unless disposed)
// @Tags         scrap
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Scrap ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/scrap/{id} [delete]
func (h *ScrapHandler) Cancel(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	sc, err := h.svc.CancelScrap(c.Context(), c.Params("id"), companyID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(sc)
}

// parseDate parses an optional YYYY-MM-DD query value.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
