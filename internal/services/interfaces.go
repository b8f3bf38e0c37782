package services

import (
	"context"

	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The concrete pgx repos in
// internal/repositories satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	CreateProfile(ctx context.Context, p *models.UserProfile) error
	CreateAdvertiserProfile(ctx context.Context, p *models.AdvertiserProfile) error
	CreateInfluencerProfile(ctx context.Context, p *models.InfluencerProfile) error
	GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetAdvertiserProfile(ctx context.Context, userID uuid.UUID) (*models.AdvertiserProfile, error)
	GetInfluencerProfile(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error)
}

type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	GetByIDWithAdvertiser(ctx context.Context, id uuid.UUID) (*models.CampaignWithAdvertiser, error)
	List(ctx context.Context, f repositories.CampaignFilter) ([]models.CampaignWithAdvertiser, error)
	Count(ctx context.Context, f repositories.CampaignFilter) (int, error)
	UpdateStatusOwned(ctx context.Context, id, advertiserID uuid.UUID, status string) (int64, error)
}

type ApplicationStore interface {
	Create(ctx context.Context, a *models.Application) error
	GetByCampaignAndInfluencer(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Application, error)
	CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	ListByInfluencer(ctx context.Context, f repositories.ApplicationFilter) ([]models.ApplicationWithCampaign, error)
	CountByInfluencer(ctx context.Context, f repositories.ApplicationFilter) (int, error)
	ListByCampaignWithApplicant(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithApplicant, error)
	SelectForCampaign(ctx context.Context, campaignID uuid.UUID, applicationIDs []uuid.UUID) (int64, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
	GetByEntity(ctx context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error)
}

// TotalPages computes the page count for a pagination envelope.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// normalizePaging applies the shared defaults: page starts at 1, limit
// defaults to 20 and is capped at 100.
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
