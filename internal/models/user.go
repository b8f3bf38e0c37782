package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Chosen once at signup, immutable afterwards.
const (
	RoleAdvertiser = "advertiser"
	RoleInfluencer = "influencer"
)

func IsValidRole(role string) bool {
	return role == RoleAdvertiser || role == RoleInfluencer
}

type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	TermsAgreed bool      `json:"terms_agreed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AdvertiserProfile struct {
	UserID                     uuid.UUID `json:"user_id"`
	BusinessName               string    `json:"business_name"`
	Location                   string    `json:"location"`
	Category                   string    `json:"category"`
	BusinessRegistrationNumber string    `json:"business_registration_number"`
}

// InfluencerProfile carries up to four optional (name, URL) channel
// pairs: blog, video, photo-sharing, micro-blog.
type InfluencerProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	BirthDate string    `json:"birth_date"`
	BlogName  *string   `json:"blog_name,omitempty"`
	BlogURL   *string   `json:"blog_url,omitempty"`
	VideoName *string   `json:"video_name,omitempty"`
	VideoURL  *string   `json:"video_url,omitempty"`
	PhotoName *string   `json:"photo_name,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	MicroName *string   `json:"micro_name,omitempty"`
	MicroURL  *string   `json:"micro_url,omitempty"`
}

// FullProfile is the /auth/profile payload: the base profile plus the
// role-specific extension (exactly one of the two is set).
type FullProfile struct {
	UserProfile
	AdvertiserProfile *AdvertiserProfile `json:"advertiser_profile,omitempty"`
	InfluencerProfile *InfluencerProfile `json:"influencer_profile,omitempty"`
}
