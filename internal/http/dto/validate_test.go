package dto

import (
	"strings"
	"testing"
)

func validAdvertiserSignup() SignupAdvertiserRequest {
	return SignupAdvertiserRequest{
		Email:       "owner@example.com",
		Password:    "password123",
		Name:        "김사장",
		Phone:       "010-1234-5678",
		TermsAgreed: true,
		AdvertiserProfile: AdvertiserProfileRequest{
			BusinessName:               "사장님 식당",
			Location:                   "서울 마포구",
			Category:                   "restaurant",
			BusinessRegistrationNumber: "123-45-67890",
		},
	}
}

func TestSignupAdvertiserValidation(t *testing.T) {
	if err := ValidateStruct(validAdvertiserSignup()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*SignupAdvertiserRequest)
		wantPart string
	}{
		{"bad email", func(r *SignupAdvertiserRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *SignupAdvertiserRequest) { r.Password = "short" }, "password"},
		{"one-char name", func(r *SignupAdvertiserRequest) { r.Name = "김" }, "name"},
		{"landline phone", func(r *SignupAdvertiserRequest) { r.Phone = "02-123-4567" }, "phone"},
		{"terms not agreed", func(r *SignupAdvertiserRequest) { r.TermsAgreed = false }, "terms_agreed"},
		{"bad biz number", func(r *SignupAdvertiserRequest) {
			r.AdvertiserProfile.BusinessRegistrationNumber = "12-345-6789"
		}, "business_registration_number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAdvertiserSignup()
			tt.mutate(&req)
			err := ValidateStruct(req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantPart)
			}
		})
	}
}

func TestPhoneFormats(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"010-1234-5678", true},
		{"01012345678", true},
		{"010-123-4567", true},
		{"011-9876-5432", true},
		{"02-1234-5678", false},
		{"010-12-3456", false},
		{"", false},
		{"+82-10-1234-5678", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			req := validAdvertiserSignup()
			req.Phone = tt.phone
			err := ValidateStruct(req)
			if tt.valid && err != nil {
				t.Errorf("phone %q rejected: %v", tt.phone, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("phone %q accepted", tt.phone)
			}
		})
	}
}

func TestInfluencerSignupChannelURLs(t *testing.T) {
	base := SignupInfluencerRequest{
		Email:       "creator@example.com",
		Password:    "password123",
		Name:        "박크리",
		Phone:       "010-9876-5432",
		TermsAgreed: true,
		InfluencerProfile: InfluencerProfileRequest{
			BirthDate: "1998-07-21",
		},
	}
	if err := ValidateStruct(base); err != nil {
		t.Fatalf("channels should be optional: %v", err)
	}

	good := "https://blog.naver.com/someone"
	req := base
	req.InfluencerProfile.BlogURL = &good
	if err := ValidateStruct(req); err != nil {
		t.Fatalf("valid blog url rejected: %v", err)
	}

	bad := "not a url"
	req = base
	req.InfluencerProfile.BlogURL = &bad
	if err := ValidateStruct(req); err == nil {
		t.Error("malformed blog url accepted")
	}

	req = base
	req.InfluencerProfile.BirthDate = "21-07-1998"
	if err := ValidateStruct(req); err == nil {
		t.Error("malformed birth date accepted")
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	valid := CreateCampaignRequest{
		Title:                "신메뉴 체험단 모집",
		RecruitmentStartDate: "2026-09-01",
		RecruitmentEndDate:   "2026-09-15",
		RecruitmentCount:     5,
		Benefits:             "2인 식사권 무료 제공합니다",
		StoreInfo:            "서울 강남구 테헤란로 123",
		Mission:              "방문 후기를 블로그에 작성해주세요",
	}
	if err := ValidateStruct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	// Length boundaries count runes, not bytes
	req := valid
	req.Benefits = strings.Repeat("가", 9)
	if err := ValidateStruct(req); err == nil {
		t.Error("9-char benefits accepted")
	}
	req.Benefits = strings.Repeat("가", 10)
	if err := ValidateStruct(req); err != nil {
		t.Errorf("10-char benefits rejected: %v", err)
	}

	req = valid
	req.Title = "체험단"
	if err := ValidateStruct(req); err == nil {
		t.Error("short title accepted")
	}

	req = valid
	req.RecruitmentCount = 0
	if err := ValidateStruct(req); err == nil {
		t.Error("zero recruitment count accepted")
	}

	req = valid
	req.RecruitmentStartDate = "2026/09/01"
	if err := ValidateStruct(req); err == nil {
		t.Error("slash date accepted")
	}
}

func TestUpdateCampaignStatusValidation(t *testing.T) {
	for _, status := range []string{"recruiting", "closed", "selected", "completed"} {
		if err := ValidateStruct(UpdateCampaignStatusRequest{Status: status}); err != nil {
			t.Errorf("status %q rejected: %v", status, err)
		}
	}
	for _, status := range []string{"", "open", "CLOSED"} {
		if err := ValidateStruct(UpdateCampaignStatusRequest{Status: status}); err == nil {
			t.Errorf("status %q accepted", status)
		}
	}
}

func TestSelectApplicantsValidation(t *testing.T) {
	if err := ValidateStruct(SelectApplicantsRequest{}); err == nil {
		t.Error("empty id list accepted")
	}
	if err := ValidateStruct(SelectApplicantsRequest{ApplicationIDs: []string{"not-a-uuid"}}); err == nil {
		t.Error("malformed id accepted")
	}
	if err := ValidateStruct(SelectApplicantsRequest{
		ApplicationIDs: []string{"7f9c24e5-2f8a-4f4b-9d3e-1a2b3c4d5e6f"},
	}); err != nil {
		t.Errorf("valid id list rejected: %v", err)
	}
}
