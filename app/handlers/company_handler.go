package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/smilemobilul/campaign-backend/app/dto"
	businessflow "github.com/smilemobilul/campaign-backend/business_flow"
)

// CompanyHandlerInterface defines the contract for company handlers
type CompanyHandlerInterface interface {
	CreateCompany(c fiber.Ctx) error
	ListCompanies(c fiber.Ctx) error
	GetCompany(c fiber.Ctx) error
	UpdateCompany(c fiber.Ctx) error
	DeleteCompany(c fiber.Ctx) error
}

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyFlow businessflow.CompanyFlow
	validator   *validator.Validate
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyFlow businessflow.CompanyFlow) *CompanyHandler {
	return &CompanyHandler{
		companyFlow: companyFlow,
		validator:   validator.New(),
	}
}

func (h *CompanyHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CompanyHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateCompany handles company creation
// @Summary Create Company
// @Description Register a new partner company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyDTO} "Company created"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.companyFlow.CreateCompany(createRequestContext(c, "/companies"), &req, metadata)
	if err != nil {
		log.Println("Company creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create company", "COMPANY_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Company created successfully", result)
}

// ListCompanies handles listing all companies
// @Summary List Companies
// @Description Retrieve all registered companies
// @Tags Companies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyDTO} "Companies retrieved"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c fiber.Ctx) error {
	result, err := h.companyFlow.ListCompanies(createRequestContext(c, "/companies"))
	if err != nil {
		log.Println("Company listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list companies", "COMPANY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Companies retrieved successfully", result)
}

// GetCompany handles fetching a single company by ID
// @Summary Get Company
// @Description Retrieve a company by its ID
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDTO} "Company retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	result, err := h.companyFlow.GetCompany(createRequestContext(c, "/companies/:id"), id)
	if err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		log.Println("Company lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to get company", "COMPANY_GET_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company retrieved successfully", result)
}

// UpdateCompany handles renaming a company
// @Summary Update Company
// @Description Update a company's name
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Updated company data"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDTO} "Company updated"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{id} [patch]
func (h *CompanyHandler) UpdateCompany(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.companyFlow.UpdateCompany(createRequestContext(c, "/companies/:id"), id, &req, metadata)
	if err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		log.Println("Company update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update company", "COMPANY_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company updated successfully", result)
}

// DeleteCompany handles removing a company
// @Summary Delete Company
// @Description Delete a company and its campaigns
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse "Company deleted"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company ID", "INVALID_COMPANY_ID", nil)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	if err := h.companyFlow.DeleteCompany(createRequestContext(c, "/companies/:id"), id, metadata); err != nil {
		if businessflow.IsCompanyNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		log.Println("Company deletion failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete company", "COMPANY_DELETE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company deleted successfully", nil)
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
