package dto

// Signup

type AdvertiserProfileRequest struct {
	BusinessName               string `json:"business_name" validate:"required,min=2"`
	Location                   string `json:"location" validate:"required,min=2"`
	Category                   string `json:"category" validate:"required"`
	BusinessRegistrationNumber string `json:"business_registration_number" validate:"required,bizregno"`
}

type InfluencerProfileRequest struct {
	BirthDate string  `json:"birth_date" validate:"required,dateymd"`
	BlogName  *string `json:"blog_name,omitempty"`
	BlogURL   *string `json:"blog_url,omitempty" validate:"omitempty,url"`
	VideoName *string `json:"video_name,omitempty"`
	VideoURL  *string `json:"video_url,omitempty" validate:"omitempty,url"`
	PhotoName *string `json:"photo_name,omitempty"`
	PhotoURL  *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	MicroName *string `json:"micro_name,omitempty"`
	MicroURL  *string `json:"micro_url,omitempty" validate:"omitempty,url"`
}

type SignupAdvertiserRequest struct {
	Email             string                   `json:"email" validate:"required,email"`
	Password          string                   `json:"password" validate:"required,min=8"`
	Name              string                   `json:"name" validate:"required,min=2"`
	Phone             string                   `json:"phone" validate:"required,phonekr"`
	TermsAgreed       bool                     `json:"terms_agreed" validate:"eq=true"`
	AdvertiserProfile AdvertiserProfileRequest `json:"advertiser_profile" validate:"required"`
}

type SignupInfluencerRequest struct {
	Email             string                   `json:"email" validate:"required,email"`
	Password          string                   `json:"password" validate:"required,min=8"`
	Name              string                   `json:"name" validate:"required,min=2"`
	Phone             string                   `json:"phone" validate:"required,phonekr"`
	TermsAgreed       bool                     `json:"terms_agreed" validate:"eq=true"`
	InfluencerProfile InfluencerProfileRequest `json:"influencer_profile" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title                string `json:"title" validate:"required,min=5"`
	RecruitmentStartDate string `json:"recruitment_start_date" validate:"required,dateymd"`
	RecruitmentEndDate   string `json:"recruitment_end_date" validate:"required,dateymd"`
	RecruitmentCount     int    `json:"recruitment_count" validate:"required,min=1"`
	Benefits             string `json:"benefits" validate:"required,min=10"`
	StoreInfo            string `json:"store_info" validate:"required,min=10"`
	Mission              string `json:"mission" validate:"required,min=10"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=recruiting closed selected completed"`
}

// Applications

type CreateApplicationRequest struct {
	CampaignID string `json:"campaign_id" validate:"required,uuid"`
	Message    string `json:"message" validate:"required,min=10"`
	VisitDate  string `json:"visit_date" validate:"required,dateymd"`
}

type SelectApplicantsRequest struct {
	ApplicationIDs []string `json:"application_ids" validate:"required,min=1,dive,uuid"`
}
