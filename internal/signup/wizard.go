// Package signup models the multi-step signup flow as an explicit
// state machine, independent of any UI. Steps advance only forward
// except for the explicit Back transition, and nothing is persisted:
// abandoning a wizard loses all entered data.
package signup

import (
	"errors"

	"github.com/experience-marketplace/backend/internal/models"
)

type Step string

const (
	StepRole    Step = "role"
	StepBasic   Step = "basic"
	StepDetails Step = "details"
	StepDone    Step = "done"
)

var (
	ErrWrongStep        = errors.New("operation not valid in current step")
	ErrInvalidRole      = errors.New("role must be advertiser or influencer")
	ErrMissingField     = errors.New("all required fields must be filled")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrTermsNotAgreed   = errors.New("terms must be agreed")
	ErrRoleMismatch     = errors.New("details do not match the selected role")
)

type BasicInfo struct {
	Name            string
	Phone           string
	Email           string
	Password        string
	ConfirmPassword string
	TermsAgreed     bool
}

// CompleteSignup is the single payload submitted at the end of the
// wizard; exactly one of the two profile fields is set.
type CompleteSignup struct {
	Role              string
	Basic             BasicInfo
	AdvertiserProfile *models.AdvertiserProfile
	InfluencerProfile *models.InfluencerProfile
}

// SubmitFunc performs the one network call of the wizard.
type SubmitFunc func(CompleteSignup) error

type Wizard struct {
	step  Step
	role  string
	basic BasicInfo
}

func NewWizard() *Wizard {
	return &Wizard{step: StepRole}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) Role() string { return w.role }

// SelectRole picks which details form the wizard will render and
// advances to the basic-info step.
func (w *Wizard) SelectRole(role string) error {
	if w.step != StepRole {
		return ErrWrongStep
	}
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	w.role = role
	w.step = StepBasic
	return nil
}

// SubmitBasic validates the shared fields and advances to the
// role-specific details step.
func (w *Wizard) SubmitBasic(b BasicInfo) error {
	if w.step != StepBasic {
		return ErrWrongStep
	}
	if b.Name == "" || b.Phone == "" || b.Email == "" || b.Password == "" {
		return ErrMissingField
	}
	if len(b.Password) < 8 {
		return ErrPasswordTooShort
	}
	if b.Password != b.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !b.TermsAgreed {
		return ErrTermsNotAgreed
	}
	w.basic = b
	w.step = StepDetails
	return nil
}

// SubmitAdvertiserDetails performs the final submission for an
// advertiser wizard. On submit failure the wizard stays on the details
// step so the user can resubmit.
func (w *Wizard) SubmitAdvertiserDetails(profile models.AdvertiserProfile, submit SubmitFunc) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	if w.role != models.RoleAdvertiser {
		return ErrRoleMismatch
	}
	if profile.BusinessName == "" || profile.Location == "" || profile.Category == "" || profile.BusinessRegistrationNumber == "" {
		return ErrMissingField
	}

	err := submit(CompleteSignup{
		Role:              w.role,
		Basic:             w.basic,
		AdvertiserProfile: &profile,
	})
	if err != nil {
		return err
	}
	w.step = StepDone
	return nil
}

// SubmitInfluencerDetails performs the final submission for an
// influencer wizard. Channels are optional; only the birth date is
// required.
func (w *Wizard) SubmitInfluencerDetails(profile models.InfluencerProfile, submit SubmitFunc) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	if w.role != models.RoleInfluencer {
		return ErrRoleMismatch
	}
	if profile.BirthDate == "" {
		return ErrMissingField
	}

	err := submit(CompleteSignup{
		Role:              w.role,
		Basic:             w.basic,
		InfluencerProfile: &profile,
	})
	if err != nil {
		return err
	}
	w.step = StepDone
	return nil
}

// Back steps the wizard backwards: details -> basic, basic -> role.
// Already-entered data for later steps is kept in memory only until
// the wizard is discarded.
func (w *Wizard) Back() error {
	switch w.step {
	case StepBasic:
		w.step = StepRole
		w.role = ""
		return nil
	case StepDetails:
		w.step = StepBasic
		return nil
	default:
		return ErrWrongStep
	}
}
