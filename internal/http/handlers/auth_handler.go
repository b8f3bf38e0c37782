package handlers

import (
	"github.com/experience-marketplace/backend/internal/auth"
	"github.com/experience-marketplace/backend/internal/config"
	"github.com/experience-marketplace/backend/internal/http/dto"
	"github.com/experience-marketplace/backend/internal/middleware"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	cfg           *config.Config
	signupService *services.SignupService
	log           *zap.Logger
}

func NewAuthHandler(cfg *config.Config, signupService *services.SignupService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, signupService: signupService, log: log}
}

func (h *AuthHandler) SignupAdvertiser(c *fiber.Ctx) error {
	var req dto.SignupAdvertiserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	userID, err := h.signupService.SignupAdvertiser(c.Context(), services.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		TermsAgreed: req.TermsAgreed,
	}, models.AdvertiserProfile{
		BusinessName:               req.AdvertiserProfile.BusinessName,
		Location:                   req.AdvertiserProfile.Location,
		Category:                   req.AdvertiserProfile.Category,
		BusinessRegistrationNumber: req.AdvertiserProfile.BusinessRegistrationNumber,
	})
	if err != nil {
		return fail(c, err)
	}

	return created(c, dto.SignupResponse{UserID: userID.String()})
}

func (h *AuthHandler) SignupInfluencer(c *fiber.Ctx) error {
	var req dto.SignupInfluencerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	p := req.InfluencerProfile
	userID, err := h.signupService.SignupInfluencer(c.Context(), services.SignupInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Phone:       req.Phone,
		TermsAgreed: req.TermsAgreed,
	}, models.InfluencerProfile{
		BirthDate: p.BirthDate,
		BlogName:  p.BlogName,
		BlogURL:   p.BlogURL,
		VideoName: p.VideoName,
		VideoURL:  p.VideoURL,
		PhotoName: p.PhotoName,
		PhotoURL:  p.PhotoURL,
		MicroName: p.MicroName,
		MicroURL:  p.MicroURL,
	})
	if err != nil {
		return fail(c, err)
	}

	return created(c, dto.SignupResponse{UserID: userID.String()})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, "invalid request body")
	}
	if err := dto.ValidateStruct(req); err != nil {
		return badRequest(c, models.ErrCodeValidationFailed, err.Error())
	}

	user, err := h.signupService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, user.ID, user.Role, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("jwt generation failed", zap.Error(err))
		return fail(c, err)
	}

	return ok(c, dto.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	profile, err := h.signupService.GetProfile(c.Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, profile)
}
