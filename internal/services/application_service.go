package services

import (
	"context"
	"errors"

	"github.com/experience-marketplace/backend/internal/events"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationService struct {
	applications ApplicationStore
	campaigns    CampaignStore
	audit        AuditStore
	publisher    events.Publisher
	log          *zap.Logger
}

func NewApplicationService(
	applications ApplicationStore,
	campaigns CampaignStore,
	audit AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		campaigns:    campaigns,
		audit:        audit,
		publisher:    publisher,
		log:          log,
	}
}

// Create submits an influencer's application. The target campaign must
// exist and still be recruiting; the storage layer's uniqueness
// constraint rejects a second application to the same campaign.
func (s *ApplicationService) Create(ctx context.Context, influencerID, campaignID uuid.UUID, message, visitDate string) (*models.Application, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, models.NewCampaignNotFoundError()
	}
	if campaign.Status != models.CampaignStatusRecruiting {
		return nil, models.NewCampaignClosedError()
	}

	app := &models.Application{
		CampaignID:   campaignID,
		InfluencerID: influencerID,
		Message:      message,
		VisitDate:    visitDate,
		Status:       models.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, models.NewDuplicateApplicationError()
		}
		s.log.Error("failed to create application", zap.Error(err),
			zap.String("campaign_id", campaignID.String()),
			zap.String("influencer_id", influencerID.String()))
		return nil, models.NewApplicationFailedError()
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &influencerID,
		ActorType:   "user",
		Action:      "application_created",
		EntityType:  "application",
		EntityID:    &app.ID,
		Meta:        map[string]any{"campaign_id": campaignID.String()},
	})

	_ = s.publisher.Publish(ctx, events.StreamPlatform, events.Event{
		Type: events.EventApplicationCreated,
		Payload: map[string]any{
			"application_id": app.ID.String(),
			"campaign_id":    campaignID.String(),
			"advertiser_id":  campaign.AdvertiserID.String(),
		},
	})

	return app, nil
}

type ListApplicationsQuery struct {
	Status *string
	Page   int
	Limit  int
}

type ApplicationPage struct {
	Applications []models.ApplicationWithCampaign `json:"applications"`
	Total        int                              `json:"total"`
	Page         int                              `json:"page"`
	Limit        int                              `json:"limit"`
	TotalPages   int                              `json:"total_pages"`
}

func (s *ApplicationService) ListMy(ctx context.Context, influencerID uuid.UUID, q ListApplicationsQuery) (*ApplicationPage, error) {
	page, limit := normalizePaging(q.Page, q.Limit)
	filter := repositories.ApplicationFilter{
		InfluencerID: influencerID,
		Status:       q.Status,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	total, err := s.applications.CountByInfluencer(ctx, filter)
	if err != nil {
		s.log.Error("failed to count applications", zap.Error(err))
		return nil, models.NewFetchFailedError()
	}

	apps, err := s.applications.ListByInfluencer(ctx, filter)
	if err != nil {
		s.log.Error("failed to list applications", zap.Error(err))
		return nil, models.NewFetchFailedError()
	}
	if apps == nil {
		apps = []models.ApplicationWithCampaign{}
	}

	return &ApplicationPage{
		Applications: apps,
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   TotalPages(total, limit),
	}, nil
}

// ListForCampaign returns every application for a campaign with
// applicant detail, for the owning advertiser only.
func (s *ApplicationService) ListForCampaign(ctx context.Context, campaignID, advertiserID uuid.UUID) ([]models.ApplicationWithApplicant, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil || campaign.AdvertiserID != advertiserID {
		return nil, models.NewUnauthorizedError()
	}

	apps, err := s.applications.ListByCampaignWithApplicant(ctx, campaignID)
	if err != nil {
		s.log.Error("failed to list campaign applications", zap.Error(err), zap.String("campaign_id", campaignID.String()))
		return nil, models.NewFetchFailedError()
	}
	if apps == nil {
		apps = []models.ApplicationWithApplicant{}
	}
	return apps, nil
}

// SelectApplicants marks the given applications as selected and flips
// the campaign to selected, atomically. Recruitment must have been
// closed first; a repeat call against an already-selected campaign is a
// no-op that reports zero newly selected rows. Returns the number of
// applications actually updated.
func (s *ApplicationService) SelectApplicants(ctx context.Context, campaignID, advertiserID uuid.UUID, applicationIDs []uuid.UUID) (int64, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil || campaign.AdvertiserID != advertiserID {
		return 0, models.NewUnauthorizedError()
	}

	// closed: normal path; selected: repeat call, tolerated as no-op.
	if campaign.Status != models.CampaignStatusClosed && campaign.Status != models.CampaignStatusSelected {
		return 0, models.NewInvalidTransitionError(campaign.Status, models.CampaignStatusSelected)
	}

	selected, err := s.applications.SelectForCampaign(ctx, campaignID, applicationIDs)
	if err != nil {
		s.log.Error("failed to select applicants", zap.Error(err), zap.String("campaign_id", campaignID.String()))
		return 0, models.NewUpdateFailedError()
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &advertiserID,
		ActorType:   "user",
		Action:      "applicants_selected",
		EntityType:  "campaign",
		EntityID:    &campaignID,
		Meta:        map[string]any{"submitted": len(applicationIDs), "selected": selected},
	})

	_ = s.publisher.Publish(ctx, events.StreamPlatform, events.Event{
		Type: events.EventApplicantsSelected,
		Payload: map[string]any{
			"campaign_id":    campaignID.String(),
			"selected_count": selected,
		},
	})

	return selected, nil
}
