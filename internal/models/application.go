package models

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusSelected = "selected"
	ApplicationStatusRejected = "rejected"
)

// Valid state transitions: from -> []to. Selected and rejected are
// terminal; there is no path between them and none back to pending.
var ValidApplicationTransitions = map[string][]string{
	ApplicationStatusPending:  {ApplicationStatusSelected, ApplicationStatusRejected},
	ApplicationStatusSelected: {},
	ApplicationStatusRejected: {},
}

func IsValidApplicationStatus(status string) bool {
	_, ok := ValidApplicationTransitions[status]
	return ok
}

func IsValidApplicationTransition(from, to string) bool {
	allowed, ok := ValidApplicationTransitions[from]
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

type Application struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaign_id"`
	InfluencerID uuid.UUID `json:"influencer_id"`
	Message      string    `json:"message"`
	VisitDate    string    `json:"visit_date"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ApplicationWithCampaign embeds Application and adds the parent
// campaign for the influencer's "my applications" list.
type ApplicationWithCampaign struct {
	Application
	Campaign Campaign `json:"campaign"`
}

// ApplicationWithApplicant embeds Application and adds applicant
// contact details plus the influencer profile for the advertiser's
// review screen.
type ApplicationWithApplicant struct {
	Application
	ApplicantName     string             `json:"applicant_name"`
	ApplicantEmail    string             `json:"applicant_email"`
	ApplicantPhone    string             `json:"applicant_phone"`
	InfluencerProfile *InfluencerProfile `json:"influencer_profile,omitempty"`
}
