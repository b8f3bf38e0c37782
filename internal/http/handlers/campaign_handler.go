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

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	campaign := &models.Campaign{
		Title:                req.Title,
		RecruitmentStartDate: req.RecruitmentStartDate,
		RecruitmentEndDate:   req.RecruitmentEndDate,
		RecruitmentCount:     req.RecruitmentCount,
		Benefits:             req.Benefits,
		StoreInfo:            req.StoreInfo,
		Mission:              req.Mission,
	}

	advertiserID := middleware.GetUserID(c)
	if err := h.campaignService.Create(c.Context(), advertiserID, campaign); err != nil {
		return fail(c, err)
	}

	return created(c, campaign)
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	q := services.ListCampaignsQuery{Page: 1, Limit: 20}

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
		if !models.IsValidCampaignStatus(v) {
			return badRequest(c, models.ErrCodeValidationFailed, "unknown campaign status")
		}
		q.Status = &v
	}

	page, err := h.campaignService.List(c.Context(), q)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, page)
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign id")
	}

	// Optional auth: logged-in influencers get their own application
	// state attached to the detail payload.
	var callerID *uuid.UUID
	if uid := middleware.GetUserID(c); uid != uuid.Nil {
		callerID = &uid
	}

	detail, err := h.campaignService.GetByID(c.Context(), id, callerID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, detail)
}

func (h *CampaignHandler) GetCampaignHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign id")
	}

	advertiserID := middleware.GetUserID(c)
	entries, err := h.campaignService.History(c.Context(), id, advertiserID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, entries)
}

func (h *CampaignHandler) UpdateCampaignStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid campaign id")
	}

	var req dto.UpdateCampaignStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	advertiserID := middleware.GetUserID(c)
	campaign, err := h.campaignService.UpdateStatus(c.Context(), id, advertiserID, req.Status)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, campaign)
}
