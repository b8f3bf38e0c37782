package services

import (
	"context"
	"testing"

	"github.com/experience-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApplicationService() (*ApplicationService, *fakeCampaignStore, *fakeApplicationStore, *fakeAuditStore, *fakePublisher) {
	campaigns := newFakeCampaignStore()
	applications := newFakeApplicationStore(campaigns)
	audit := &fakeAuditStore{}
	publisher := &fakePublisher{}
	svc := NewApplicationService(applications, campaigns, audit, publisher, zap.NewNop())
	return svc, campaigns, applications, audit, publisher
}

func TestApplicationCreateHappyPath(t *testing.T) {
	svc, campaigns, _, audit, publisher := newApplicationService()
	campaign := seedCampaign(t, campaigns, uuid.New(), models.CampaignStatusRecruiting)
	influencerID := uuid.New()

	app, err := svc.Create(context.Background(), influencerID, campaign.ID, "꼭 참여하고 싶습니다. 후기 정성껏 작성할게요.", "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, app.Status)
	assert.Equal(t, influencerID, app.InfluencerID)
	assert.Equal(t, campaign.ID, app.CampaignID)
	assert.Contains(t, audit.actions(), "application_created")
	assert.Contains(t, publisher.types(), "application_created")
}

func TestApplicationCreateCampaignNotFound(t *testing.T) {
	svc, _, _, _, _ := newApplicationService()

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), "참여 신청합니다", "2026-09-10")
	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeCampaignNotFound, appErr.Code)
}

func TestApplicationCreateRejectsNonRecruiting(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()

	for _, status := range []string{
		models.CampaignStatusClosed,
		models.CampaignStatusSelected,
		models.CampaignStatusCompleted,
	} {
		t.Run(status, func(t *testing.T) {
			campaign := seedCampaign(t, campaigns, uuid.New(), status)
			_, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
			appErr := models.AsAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, models.ErrCodeCampaignClosed, appErr.Code)
		})
	}
}

func TestApplicationCreateRejectsDuplicate(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	campaign := seedCampaign(t, campaigns, uuid.New(), models.CampaignStatusRecruiting)
	influencerID := uuid.New()

	_, err := svc.Create(context.Background(), influencerID, campaign.ID, "첫 번째 신청입니다", "2026-09-10")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), influencerID, campaign.ID, "두 번째 신청입니다", "2026-09-11")
	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeDuplicateApplication, appErr.Code)
	assert.Equal(t, 409, appErr.Status)

	// A different influencer can still apply
	_, err = svc.Create(context.Background(), uuid.New(), campaign.ID, "다른 사람 신청입니다", "2026-09-12")
	assert.NoError(t, err)
}

func TestApplicationListMyPagination(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	influencerID := uuid.New()
	for i := 0; i < 7; i++ {
		campaign := seedCampaign(t, campaigns, uuid.New(), models.CampaignStatusRecruiting)
		_, err := svc.Create(context.Background(), influencerID, campaign.ID, "참여 신청합니다", "2026-09-10")
		require.NoError(t, err)
	}

	page, err := svc.ListMy(context.Background(), influencerID, ListApplicationsQuery{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Applications, 5)

	// Each row carries its campaign
	for _, app := range page.Applications {
		assert.NotEqual(t, uuid.Nil, app.Campaign.ID)
	}

	other, err := svc.ListMy(context.Background(), uuid.New(), ListApplicationsQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Total)
	assert.NotNil(t, other.Applications)
}

func TestApplicationListForCampaignOwnerOnly(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	advertiserID := uuid.New()
	campaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)

	_, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
	require.NoError(t, err)

	apps, err := svc.ListForCampaign(context.Background(), campaign.ID, advertiserID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	// Non-owner gets 403, indistinguishable from a missing campaign
	_, err = svc.ListForCampaign(context.Background(), campaign.ID, uuid.New())
	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeUnauthorized, appErr.Code)

	_, err = svc.ListForCampaign(context.Background(), uuid.New(), advertiserID)
	appErr = models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeUnauthorized, appErr.Code)
}

func TestSelectApplicantsHappyPath(t *testing.T) {
	svc, campaigns, store, audit, publisher := newApplicationService()
	advertiserID := uuid.New()
	campaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		app, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
		require.NoError(t, err)
		ids = append(ids, app.ID)
	}

	_, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "떨어질 신청입니다", "2026-09-10")
	require.NoError(t, err)

	// Close recruitment first
	campaigns.campaigns[campaign.ID].Status = models.CampaignStatusClosed

	selected, err := svc.SelectApplicants(context.Background(), campaign.ID, advertiserID, ids[:2])
	require.NoError(t, err)
	assert.Equal(t, int64(2), selected)

	stored, _ := campaigns.GetByID(context.Background(), campaign.ID)
	assert.Equal(t, models.CampaignStatusSelected, stored.Status)

	assert.Equal(t, models.ApplicationStatusSelected, store.apps[ids[0]].Status)
	assert.Equal(t, models.ApplicationStatusSelected, store.apps[ids[1]].Status)
	assert.Equal(t, models.ApplicationStatusPending, store.apps[ids[2]].Status)

	assert.Contains(t, audit.actions(), "applicants_selected")
	assert.Contains(t, publisher.types(), "applicants_selected")
}

func TestSelectApplicantsRequiresClosed(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	advertiserID := uuid.New()
	campaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)

	app, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
	require.NoError(t, err)

	_, err = svc.SelectApplicants(context.Background(), campaign.ID, advertiserID, []uuid.UUID{app.ID})
	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeInvalidTransition, appErr.Code)
}

func TestSelectApplicantsRejectsNonOwner(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	campaign := seedCampaign(t, campaigns, uuid.New(), models.CampaignStatusClosed)

	_, err := svc.SelectApplicants(context.Background(), campaign.ID, uuid.New(), []uuid.UUID{uuid.New()})
	appErr := models.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, models.ErrCodeUnauthorized, appErr.Code)
}

func TestSelectApplicantsRepeatIsNoOp(t *testing.T) {
	svc, campaigns, _, _, _ := newApplicationService()
	advertiserID := uuid.New()
	campaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)

	app, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
	require.NoError(t, err)

	campaigns.campaigns[campaign.ID].Status = models.CampaignStatusClosed

	selected, err := svc.SelectApplicants(context.Background(), campaign.ID, advertiserID, []uuid.UUID{app.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), selected)

	// Same call again: tolerated, but nothing newly selected
	selected, err = svc.SelectApplicants(context.Background(), campaign.ID, advertiserID, []uuid.UUID{app.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), selected)
}

func TestSelectApplicantsIgnoresForeignApplications(t *testing.T) {
	svc, campaigns, store, _, _ := newApplicationService()
	advertiserID := uuid.New()
	campaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)
	otherCampaign := seedCampaign(t, campaigns, advertiserID, models.CampaignStatusRecruiting)

	ours, err := svc.Create(context.Background(), uuid.New(), campaign.ID, "참여 신청합니다", "2026-09-10")
	require.NoError(t, err)
	foreign, err := svc.Create(context.Background(), uuid.New(), otherCampaign.ID, "다른 캠페인 신청", "2026-09-10")
	require.NoError(t, err)

	campaigns.campaigns[campaign.ID].Status = models.CampaignStatusClosed

	// Only the application belonging to this campaign counts
	selected, err := svc.SelectApplicants(context.Background(), campaign.ID, advertiserID, []uuid.UUID{ours.ID, foreign.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), selected)
	assert.Equal(t, models.ApplicationStatusSelected, store.apps[ours.ID].Status)
	assert.Equal(t, models.ApplicationStatusPending, store.apps[foreign.ID].Status)
}
