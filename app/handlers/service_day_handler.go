package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/smilemobilul/campaign-backend/app/dto"
	businessflow "github.com/smilemobilul/campaign-backend/business_flow"
)

// ServiceDayHandlerInterface defines the contract for service day handlers
type ServiceDayHandlerInterface interface {
	CreateServiceDays(c fiber.Ctx) error
	ListServiceDays(c fiber.Ctx) error
	UpdateServiceDay(c fiber.Ctx) error
	DeleteServiceDays(c fiber.Ctx) error
}

// ServiceDayHandler handles service day scheduling HTTP requests
type ServiceDayHandler struct {
	serviceDayFlow businessflow.ServiceDayFlow
	validator      *validator.Validate
}

// NewServiceDayHandler creates a new service day handler
func NewServiceDayHandler(serviceDayFlow businessflow.ServiceDayFlow) *ServiceDayHandler {
	return &ServiceDayHandler{
		serviceDayFlow: serviceDayFlow,
		validator:      validator.New(),
	}
}

func (h *ServiceDayHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ServiceDayHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateServiceDays handles bulk scheduling of service days for a campaign
// @Summary Schedule Service Days
// @Description Schedule one or more service days for a campaign. The whole batch is rejected if any date violates the campaign's date rules.
// @Tags ServiceDays
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceDaysRequest true "Campaign ID and dates"
// @Success 201 {object} dto.APIResponse{data=[]dto.ServiceDayDTO} "Service days scheduled"
// @Failure 400 {object} dto.APIResponse "Validation error or date rule violation"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /service-days [post]
func (h *ServiceDayHandler) CreateServiceDays(c fiber.Ctx) error {
	var req dto.CreateServiceDaysRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.serviceDayFlow.ScheduleServiceDays(createRequestContext(c, "/service-days"), &req, metadata)
	if err != nil {
		return h.mapServiceDayError(c, err, "Failed to schedule service days", "SERVICE_DAYS_CREATE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Service days scheduled successfully", result)
}

// ListServiceDays handles listing all service days of a campaign
// @Summary List Service Days
// @Description Retrieve all service days scheduled for a campaign
// @Tags ServiceDays
// @Produce json
// @Param campaign_id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ServiceDayDTO} "Service days retrieved"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /service-days/{campaign_id} [get]
func (h *ServiceDayHandler) ListServiceDays(c fiber.Ctx) error {
	campaignID, err := parseIDParam(c, "campaign_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid campaign ID", "INVALID_CAMPAIGN_ID", nil)
	}

	result, err := h.serviceDayFlow.ListServiceDays(createRequestContext(c, "/service-days/:campaign_id"), campaignID)
	if err != nil {
		if businessflow.IsCampaignNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
		}
		log.Println("Service day listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list service days", "SERVICE_DAYS_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Service days retrieved successfully", result)
}

// UpdateServiceDay handles moving a service day to a new date
// @Summary Update Service Day
// @Description Move a service day to a new date, validated against its owning campaign's date rules
// @Tags ServiceDays
// @Accept json
// @Produce json
// @Param service_day_id path int true "Service Day ID"
// @Param request body dto.UpdateServiceDayRequest true "New date"
// @Success 200 {object} dto.APIResponse{data=dto.ServiceDayDTO} "Service day updated"
// @Failure 400 {object} dto.APIResponse "Validation error or date rule violation"
// @Failure 404 {object} dto.APIResponse "Service day not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /service-days/{service_day_id} [patch]
func (h *ServiceDayHandler) UpdateServiceDay(c fiber.Ctx) error {
	serviceDayID, err := parseIDParam(c, "service_day_id")
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid service day ID", "INVALID_SERVICE_DAY_ID", nil)
	}

	var req dto.UpdateServiceDayRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.serviceDayFlow.UpdateServiceDay(createRequestContext(c, "/service-days/:service_day_id"), serviceDayID, &req, metadata)
	if err != nil {
		return h.mapServiceDayError(c, err, "Failed to update service day", "SERVICE_DAY_UPDATE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Service day updated successfully", result)
}

// DeleteServiceDays handles bulk deletion of service days from a campaign
// @Summary Delete Service Days
// @Description Delete one or more service days belonging to a campaign
// @Tags ServiceDays
// @Accept json
// @Produce json
// @Param request body dto.DeleteServiceDaysRequest true "Campaign ID and service day IDs"
// @Success 200 {object} dto.APIResponse{data=[]dto.ServiceDayDTO} "Service days deleted"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 404 {object} dto.APIResponse "Campaign or service days not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /service-days [delete]
func (h *ServiceDayHandler) DeleteServiceDays(c fiber.Ctx) error {
	var req dto.DeleteServiceDaysRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrorMessages(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))

	result, err := h.serviceDayFlow.DeleteServiceDays(createRequestContext(c, "/service-days"), &req, metadata)
	if err != nil {
		if businessflow.IsServiceDaysNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "No matching service days found for this campaign", "SERVICE_DAYS_NOT_FOUND", nil)
		}
		return h.mapServiceDayError(c, err, "Failed to delete service days", "SERVICE_DAYS_DELETE_FAILED")
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Service days deleted successfully", result)
}

// mapServiceDayError translates service day business errors to HTTP responses.
// Date rule violations surface the rule message so the caller knows which
// date failed and why.
func (h *ServiceDayHandler) mapServiceDayError(c fiber.Ctx, err error, genericMessage, genericCode string) error {
	if businessflow.IsServiceDateInvalid(err) {
		message := "Service date is invalid"
		var be *businessflow.BusinessError
		if asBusinessError(err, &be) {
			message = be.Message
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, message, "SERVICE_DATE_INVALID", nil)
	}
	if businessflow.IsCampaignNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Campaign not found", "CAMPAIGN_NOT_FOUND", nil)
	}
	if businessflow.IsServiceDayNotFound(err) {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Service day not found", "SERVICE_DAY_NOT_FOUND", nil)
	}

	log.Println(genericMessage, err)
	return h.ErrorResponse(c, fiber.StatusInternalServerError, genericMessage, genericCode, nil)
}
