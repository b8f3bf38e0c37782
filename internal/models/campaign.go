package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusRecruiting = "recruiting"
	CampaignStatusClosed     = "closed"
	CampaignStatusSelected   = "selected"
	CampaignStatusCompleted  = "completed"
)

// Valid state transitions: from -> []to
var ValidCampaignTransitions = map[string][]string{
	CampaignStatusRecruiting: {CampaignStatusClosed},
	CampaignStatusClosed:     {CampaignStatusSelected},
	CampaignStatusSelected:   {CampaignStatusCompleted},
	CampaignStatusCompleted:  {},
}

func IsValidCampaignStatus(status string) bool {
	_, ok := ValidCampaignTransitions[status]
	return ok
}

func IsValidCampaignTransition(from, to string) bool {
	allowed, ok := ValidCampaignTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

type Campaign struct {
	ID                   uuid.UUID `json:"id"`
	AdvertiserID         uuid.UUID `json:"advertiser_id"`
	Title                string    `json:"title"`
	RecruitmentStartDate string    `json:"recruitment_start_date"`
	RecruitmentEndDate   string    `json:"recruitment_end_date"`
	RecruitmentCount     int       `json:"recruitment_count"`
	Benefits             string    `json:"benefits"`
	StoreInfo            string    `json:"store_info"`
	Mission              string    `json:"mission"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// CampaignWithAdvertiser embeds Campaign and adds the advertiser's
// public display info to avoid N+1 queries on list pages.
type CampaignWithAdvertiser struct {
	Campaign
	AdvertiserName *string `json:"advertiser_name,omitempty"`
	BusinessName   *string `json:"business_name,omitempty"`
	Location       *string `json:"location,omitempty"`
}

// CampaignDetail is the single-campaign payload: the list row plus a
// freshly computed application count and, when the caller has applied,
// their own application.
type CampaignDetail struct {
	CampaignWithAdvertiser
	ApplicationCount int          `json:"application_count"`
	UserApplication  *Application `json:"user_application"`
}
