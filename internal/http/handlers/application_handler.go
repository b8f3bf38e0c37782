package handlers

import (
	"strconv"

	"github.com/experience-marketplace/backend/internal/http/dto"
	"github.com/experience-marketplace/backend/internal/middleware"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
	log                *zap.Logger
}

func NewApplicationHandler(applicationService *services.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService, log: log}
}

func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign_id")
	}

	influencerID := middleware.GetUserID(c)
	app, err := h.applicationService.Create(c.Context(), influencerID, campaignID, req.Message, req.VisitDate)
	if err != nil {
		return fail(c, err)
	}

	return created(c, app)
}

func (h *ApplicationHandler) ListMyApplications(c *fiber.Ctx) error {
	q := services.ListApplicationsQuery{Page: 1, Limit: 20}

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}
	if v := c.Query("status"); v != "" {
		if !models.IsValidApplicationStatus(v) {
			return badRequest(c, models.ErrCodeValidationFailed, "unknown application status")
		}
		q.Status = &v
	}

	influencerID := middleware.GetUserID(c)
	page, err := h.applicationService.ListMy(c.Context(), influencerID, q)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, page)
}

func (h *ApplicationHandler) ListCampaignApplications(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign id")
	}

	advertiserID := middleware.GetUserID(c)
	apps, err := h.applicationService.ListForCampaign(c.Context(), campaignID, advertiserID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, apps)
}

func (h *ApplicationHandler) SelectApplicants(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign id")
	}

	var req dto.SelectApplicantsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	applicationIDs := make([]uuid.UUID, 0, len(req.ApplicationIDs))
	for _, raw := range req.ApplicationIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, models.ErrCodeValidationFailed, "invalid application id")
		}
		applicationIDs = append(applicationIDs, id)
	}

	advertiserID := middleware.GetUserID(c)
	count, err := h.applicationService.SelectApplicants(c.Context(), campaignID, advertiserID, applicationIDs)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, dto.SelectApplicantsResponse{SelectedCount: count})
}
