package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/dto"
	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/application/usecase"
)

// CompanyHandler serves company administration endpoints (superadmin only).
type CompanyHandler struct {
	companies *usecase.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(companies *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Create godoc
// @Summary      Register a company
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "company_code, name, ..."
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	company, err := h.companies.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Get godoc
// @Summary      Get one company
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Company ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.companies.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(company)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var q dto.PageRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	q.DefaultPage()
	list, err := h.companies.List(q.Limit, q.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "companies": list})
}
