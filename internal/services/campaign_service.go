package services

import (
	"context"

	"github.com/experience-marketplace/backend/internal/events"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaigns    CampaignStore
	applications ApplicationStore
	audit        AuditStore
	publisher    events.Publisher
	log          *zap.Logger
}

func NewCampaignService(
	campaigns CampaignStore,
	applications ApplicationStore,
	audit AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaigns:    campaigns,
		applications: applications,
		audit:        audit,
		publisher:    publisher,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, advertiserID uuid.UUID, c *models.Campaign) error {
	c.AdvertiserID = advertiserID
	c.Status = models.CampaignStatusRecruiting

	if err := s.campaigns.Create(ctx, c); err != nil {
		s.log.Error("failed to create campaign", zap.Error(err), zap.String("advertiser_id", advertiserID.String()))
		return models.NewCreateFailedError()
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &advertiserID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
		Meta:        map[string]any{"title": c.Title, "recruitment_count": c.RecruitmentCount},
	})

	return nil
}

type ListCampaignsQuery struct {
	Status *string
	Page   int
	Limit  int
}

type CampaignPage struct {
	Campaigns  []models.CampaignWithAdvertiser `json:"campaigns"`
	Total      int                             `json:"total"`
	Page       int                             `json:"page"`
	Limit      int                             `json:"limit"`
	TotalPages int                             `json:"total_pages"`
}

func (s *CampaignService) List(ctx context.Context, q ListCampaignsQuery) (*CampaignPage, error) {
	page, limit := normalizePaging(q.Page, q.Limit)
	filter := repositories.CampaignFilter{
		Status: q.Status,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	total, err := s.campaigns.Count(ctx, filter)
	if err != nil {
		s.log.Error("failed to count campaigns", zap.Error(err))
		return nil, models.NewFetchFailedError()
	}

	campaigns, err := s.campaigns.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list campaigns", zap.Error(err))
		return nil, models.NewFetchFailedError()
	}
	if campaigns == nil {
		campaigns = []models.CampaignWithAdvertiser{}
	}

	return &CampaignPage{
		Campaigns:  campaigns,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}, nil
}

// GetByID returns campaign detail with a freshly computed application
// count. When callerID is set and that caller has applied, their own
// application rides along as user_application.
func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*models.CampaignDetail, error) {
	campaign, err := s.campaigns.GetByIDWithAdvertiser(ctx, id)
	if err != nil {
		return nil, models.NewCampaignNotFoundError()
	}

	count, err := s.applications.CountByCampaign(ctx, id)
	if err != nil {
		s.log.Error("failed to count applications", zap.Error(err), zap.String("campaign_id", id.String()))
		return nil, models.NewFetchFailedError()
	}

	detail := &models.CampaignDetail{
		CampaignWithAdvertiser: *campaign,
		ApplicationCount:       count,
	}

	if callerID != nil {
		app, err := s.applications.GetByCampaignAndInfluencer(ctx, id, *callerID)
		if err != nil {
			s.log.Error("failed to fetch caller application", zap.Error(err), zap.String("campaign_id", id.String()))
			return nil, models.NewFetchFailedError()
		}
		detail.UserApplication = app
	}

	return detail, nil
}

// History returns the audit trail of a campaign for its owner, newest
// first.
func (s *CampaignService) History(ctx context.Context, id, advertiserID uuid.UUID) ([]models.AuditLog, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewCampaignNotFoundError()
	}
	if campaign.AdvertiserID != advertiserID {
		return nil, models.NewUnauthorizedError()
	}

	entries, err := s.audit.GetByEntity(ctx, "campaign", id, 100, 0)
	if err != nil {
		s.log.Error("failed to fetch campaign history", zap.Error(err), zap.String("campaign_id", id.String()))
		return nil, models.NewFetchFailedError()
	}
	if entries == nil {
		entries = []models.AuditLog{}
	}
	return entries, nil
}

// UpdateStatus performs an advertiser-initiated status transition. The
// transition table is checked against the current state, and the
// ownership filter is part of the update predicate so a non-owner's
// write matches zero rows.
func (s *CampaignService) UpdateStatus(ctx context.Context, id, advertiserID uuid.UUID, newStatus string) (*models.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, models.NewCampaignNotFoundError()
	}
	if campaign.AdvertiserID != advertiserID {
		return nil, models.NewUnauthorizedError()
	}
	if !models.IsValidCampaignTransition(campaign.Status, newStatus) {
		return nil, models.NewInvalidTransitionError(campaign.Status, newStatus)
	}

	affected, err := s.campaigns.UpdateStatusOwned(ctx, id, advertiserID, newStatus)
	if err != nil {
		s.log.Error("failed to update campaign status", zap.Error(err), zap.String("campaign_id", id.String()))
		return nil, models.NewUpdateFailedError()
	}
	if affected == 0 {
		return nil, models.NewUpdateFailedError()
	}

	oldStatus := campaign.Status
	campaign.Status = newStatus

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &advertiserID,
		ActorType:   "user",
		Action:      "campaign_status_" + oldStatus + "_to_" + newStatus,
		EntityType:  "campaign",
		EntityID:    &campaign.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	_ = s.publisher.Publish(ctx, events.StreamPlatform, events.Event{
		Type: events.EventCampaignStatusChanged,
		Payload: map[string]any{
			"campaign_id": campaign.ID.String(),
			"old_status":  oldStatus,
			"new_status":  newStatus,
		},
	})

	return campaign, nil
}
