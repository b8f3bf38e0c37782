package services

import (
	"context"
	"errors"
	"sync"

	"github.com/experience-marketplace/backend/internal/channelcheck"
	"github.com/experience-marketplace/backend/internal/events"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/experience-marketplace/backend/internal/repositories"
	"github.com/google/uuid"
)

// In-memory stand-ins for the pgx repos. They hold rows in maps and
// reproduce the few storage behaviors the services depend on: the
// duplicate-application constraint, the ownership predicate on status
// updates and the two-step selection.

var errNotFound = errors.New("not found")

type fakeUserStore struct {
	profiles    map[uuid.UUID]*models.UserProfile
	advertisers map[uuid.UUID]*models.AdvertiserProfile
	influencers map[uuid.UUID]*models.InfluencerProfile

	failProfile           bool
	failAdvertiserProfile bool
	failInfluencerProfile bool
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		profiles:    make(map[uuid.UUID]*models.UserProfile),
		advertisers: make(map[uuid.UUID]*models.AdvertiserProfile),
		influencers: make(map[uuid.UUID]*models.InfluencerProfile),
	}
}

func (f *fakeUserStore) CreateProfile(_ context.Context, p *models.UserProfile) error {
	if f.failProfile {
		return errors.New("insert failed")
	}
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeUserStore) CreateAdvertiserProfile(_ context.Context, p *models.AdvertiserProfile) error {
	if f.failAdvertiserProfile {
		return errors.New("insert failed")
	}
	cp := *p
	f.advertisers[p.UserID] = &cp
	return nil
}

func (f *fakeUserStore) CreateInfluencerProfile(_ context.Context, p *models.InfluencerProfile) error {
	if f.failInfluencerProfile {
		return errors.New("insert failed")
	}
	cp := *p
	f.influencers[p.UserID] = &cp
	return nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeUserStore) GetAdvertiserProfile(_ context.Context, userID uuid.UUID) (*models.AdvertiserProfile, error) {
	p, ok := f.advertisers[userID]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeUserStore) GetInfluencerProfile(_ context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	p, ok := f.influencers[userID]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

type fakeCampaignStore struct {
	campaigns map[uuid.UUID]*models.Campaign
	owners    map[uuid.UUID]string // advertiser display name
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{
		campaigns: make(map[uuid.UUID]*models.Campaign),
		owners:    make(map[uuid.UUID]string),
	}
}

func (f *fakeCampaignStore) Create(_ context.Context, c *models.Campaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	f.campaigns[c.ID] = &cp
	return nil
}

func (f *fakeCampaignStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCampaignStore) GetByIDWithAdvertiser(_ context.Context, id uuid.UUID) (*models.CampaignWithAdvertiser, error) {
	c, ok := f.campaigns[id]
	if !ok {
		return nil, errNotFound
	}
	out := &models.CampaignWithAdvertiser{Campaign: *c}
	if name, ok := f.owners[c.AdvertiserID]; ok {
		out.AdvertiserName = &name
	}
	return out, nil
}

func (f *fakeCampaignStore) List(_ context.Context, filter repositories.CampaignFilter) ([]models.CampaignWithAdvertiser, error) {
	matched := f.match(filter)
	if filter.Offset >= len(matched) {
		return nil, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], nil
}

func (f *fakeCampaignStore) Count(_ context.Context, filter repositories.CampaignFilter) (int, error) {
	return len(f.match(filter)), nil
}

func (f *fakeCampaignStore) match(filter repositories.CampaignFilter) []models.CampaignWithAdvertiser {
	var out []models.CampaignWithAdvertiser
	for _, c := range f.campaigns {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.AdvertiserID != nil && c.AdvertiserID != *filter.AdvertiserID {
			continue
		}
		out = append(out, models.CampaignWithAdvertiser{Campaign: *c})
	}
	return out
}

func (f *fakeCampaignStore) UpdateStatusOwned(_ context.Context, id, advertiserID uuid.UUID, status string) (int64, error) {
	c, ok := f.campaigns[id]
	if !ok || c.AdvertiserID != advertiserID {
		return 0, nil
	}
	c.Status = status
	return 1, nil
}

type fakeApplicationStore struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*models.Application

	campaigns *fakeCampaignStore
}

func newFakeApplicationStore(campaigns *fakeCampaignStore) *fakeApplicationStore {
	return &fakeApplicationStore{
		apps:      make(map[uuid.UUID]*models.Application),
		campaigns: campaigns,
	}
}

func (f *fakeApplicationStore) Create(_ context.Context, a *models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.CampaignID == a.CampaignID && existing.InfluencerID == a.InfluencerID {
			return repositories.ErrDuplicate
		}
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	cp := *a
	f.apps[a.ID] = &cp
	return nil
}

func (f *fakeApplicationStore) GetByCampaignAndInfluencer(_ context.Context, campaignID, influencerID uuid.UUID) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.CampaignID == campaignID && a.InfluencerID == influencerID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) CountByCampaign(_ context.Context, campaignID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.apps {
		if a.CampaignID == campaignID {
			n++
		}
	}
	return n, nil
}

func (f *fakeApplicationStore) ListByInfluencer(_ context.Context, filter repositories.ApplicationFilter) ([]models.ApplicationWithCampaign, error) {
	matched := f.matchByInfluencer(filter)
	if filter.Offset >= len(matched) {
		return nil, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], nil
}

func (f *fakeApplicationStore) CountByInfluencer(_ context.Context, filter repositories.ApplicationFilter) (int, error) {
	return len(f.matchByInfluencer(filter)), nil
}

func (f *fakeApplicationStore) matchByInfluencer(filter repositories.ApplicationFilter) []models.ApplicationWithCampaign {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ApplicationWithCampaign
	for _, a := range f.apps {
		if a.InfluencerID != filter.InfluencerID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		item := models.ApplicationWithCampaign{Application: *a}
		if c, ok := f.campaigns.campaigns[a.CampaignID]; ok {
			item.Campaign = *c
		}
		out = append(out, item)
	}
	return out
}

func (f *fakeApplicationStore) ListByCampaignWithApplicant(_ context.Context, campaignID uuid.UUID) ([]models.ApplicationWithApplicant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ApplicationWithApplicant
	for _, a := range f.apps {
		if a.CampaignID == campaignID {
			out = append(out, models.ApplicationWithApplicant{Application: *a})
		}
	}
	return out, nil
}

// SelectForCampaign mirrors the transactional update pair: pending
// applications flip to selected, then the campaign flips from closed to
// selected. Only the application update contributes to the count.
func (f *fakeApplicationStore) SelectForCampaign(_ context.Context, campaignID uuid.UUID, applicationIDs []uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var selected int64
	for _, id := range applicationIDs {
		a, ok := f.apps[id]
		if !ok || a.CampaignID != campaignID || a.Status != models.ApplicationStatusPending {
			continue
		}
		a.Status = models.ApplicationStatusSelected
		selected++
	}

	if c, ok := f.campaigns.campaigns[campaignID]; ok && c.Status == models.CampaignStatusClosed {
		c.Status = models.CampaignStatusSelected
	}

	return selected, nil
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (f *fakeAuditStore) Log(_ context.Context, entry models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditStore) GetByEntity(_ context.Context, entityType string, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AuditLog
	for _, e := range f.entries {
		if e.EntityType == entityType && e.EntityID != nil && *e.EntityID == entityID {
			out = append(out, e)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	if limit > 0 && offset+limit < len(out) {
		out = out[offset : offset+limit]
	} else {
		out = out[offset:]
	}
	return out, nil
}

func (f *fakeAuditStore) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(_ context.Context, _ string, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakeIdentityProvider struct {
	users       map[string]string // email -> password
	ids         map[string]uuid.UUID
	signupError error
}

func newFakeIdentityProvider() *fakeIdentityProvider {
	return &fakeIdentityProvider{
		users: make(map[string]string),
		ids:   make(map[string]uuid.UUID),
	}
}

func (f *fakeIdentityProvider) SignUp(_ context.Context, email, password string) (uuid.UUID, error) {
	if f.signupError != nil {
		return uuid.Nil, f.signupError
	}
	if _, exists := f.users[email]; exists {
		return uuid.Nil, errors.New("email taken")
	}
	id := uuid.New()
	f.users[email] = password
	f.ids[email] = id
	return id, nil
}

func (f *fakeIdentityProvider) Authenticate(_ context.Context, email, password string) (uuid.UUID, error) {
	stored, ok := f.users[email]
	if !ok || stored != password {
		return uuid.Nil, errors.New("invalid credentials")
	}
	return f.ids[email], nil
}

type fakeProber struct {
	mu     sync.Mutex
	probed []string
}

func (f *fakeProber) Probe(_ context.Context, rawURL string) (*channelcheck.ChannelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, rawURL)
	return &channelcheck.ChannelInfo{URL: rawURL, Title: "probed"}, nil
}
