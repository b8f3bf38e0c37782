package models

import "testing"

func TestIsValidCampaignTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Happy path
		{CampaignStatusRecruiting, CampaignStatusClosed, true},
		{CampaignStatusClosed, CampaignStatusSelected, true},
		{CampaignStatusSelected, CampaignStatusCompleted, true},

		// No skipping steps
		{CampaignStatusRecruiting, CampaignStatusSelected, false},
		{CampaignStatusRecruiting, CampaignStatusCompleted, false},
		{CampaignStatusClosed, CampaignStatusCompleted, false},

		// No going backwards
		{CampaignStatusClosed, CampaignStatusRecruiting, false},
		{CampaignStatusSelected, CampaignStatusClosed, false},
		{CampaignStatusCompleted, CampaignStatusSelected, false},

		// Self transitions
		{CampaignStatusRecruiting, CampaignStatusRecruiting, false},
		{CampaignStatusCompleted, CampaignStatusCompleted, false},

		// Unknown statuses
		{"nonexistent", CampaignStatusClosed, false},
		{CampaignStatusRecruiting, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidCampaignTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidCampaignTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllCampaignStatusesHaveTransitionEntry(t *testing.T) {
	allStatuses := []string{
		CampaignStatusRecruiting, CampaignStatusClosed,
		CampaignStatusSelected, CampaignStatusCompleted,
	}

	for _, status := range allStatuses {
		if _, ok := ValidCampaignTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidCampaignTransitions map", status)
		}
	}
}

func TestCompletedCampaignHasNoTransitions(t *testing.T) {
	transitions := ValidCampaignTransitions[CampaignStatusCompleted]
	if len(transitions) != 0 {
		t.Errorf("terminal status %q should have no transitions, got %v", CampaignStatusCompleted, transitions)
	}
}

func TestIsValidCampaignStatus(t *testing.T) {
	valid := []string{
		CampaignStatusRecruiting, CampaignStatusClosed,
		CampaignStatusSelected, CampaignStatusCompleted,
	}
	for _, status := range valid {
		if !IsValidCampaignStatus(status) {
			t.Errorf("IsValidCampaignStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{"", "draft", "open", "RECRUITING"} {
		if IsValidCampaignStatus(status) {
			t.Errorf("IsValidCampaignStatus(%q) = true, want false", status)
		}
	}
}
