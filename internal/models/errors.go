package models

import (
	"errors"
	"fmt"
)

// Error codes surfaced in failure envelopes.
const (
	ErrCodeSignupFailed         = "SIGNUP_FAILED"
	ErrCodeLoginFailed          = "LOGIN_FAILED"
	ErrCodeProfileCreateFailed  = "PROFILE_CREATE_FAILED"
	ErrCodeUserNotFound         = "USER_NOT_FOUND"
	ErrCodeCampaignNotFound     = "CAMPAIGN_NOT_FOUND"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeCreateFailed         = "CREATE_FAILED"
	ErrCodeUpdateFailed         = "UPDATE_FAILED"
	ErrCodeApplicationFailed    = "APPLICATION_FAILED"
	ErrCodeFetchFailed          = "FETCH_FAILED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeDuplicateApplication = "DUPLICATE_APPLICATION"
	ErrCodeCampaignClosed       = "CAMPAIGN_CLOSED"
)

// AppError is the uniform failure shape: an HTTP status, a
// machine-readable code, and a client-safe message. Services convert
// every store-level error into one of these at their own boundary; raw
// error text never reaches the client.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// AsAppError unwraps err into an *AppError, or nil.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func NewSignupFailedError() *AppError {
	return &AppError{Status: 400, Code: ErrCodeSignupFailed, Message: "signup failed"}
}

func NewLoginFailedError() *AppError {
	return &AppError{Status: 401, Code: ErrCodeLoginFailed, Message: "invalid email or password"}
}

func NewProfileCreateFailedError() *AppError {
	return &AppError{Status: 500, Code: ErrCodeProfileCreateFailed, Message: "failed to create profile"}
}

func NewUserNotFoundError() *AppError {
	return &AppError{Status: 404, Code: ErrCodeUserNotFound, Message: "user not found"}
}

func NewCampaignNotFoundError() *AppError {
	return &AppError{Status: 404, Code: ErrCodeCampaignNotFound, Message: "campaign not found"}
}

func NewUnauthorizedError() *AppError {
	return &AppError{Status: 403, Code: ErrCodeUnauthorized, Message: "not allowed to perform this action"}
}

func NewCreateFailedError() *AppError {
	return &AppError{Status: 400, Code: ErrCodeCreateFailed, Message: "failed to create campaign"}
}

func NewUpdateFailedError() *AppError {
	return &AppError{Status: 400, Code: ErrCodeUpdateFailed, Message: "failed to apply update"}
}

func NewApplicationFailedError() *AppError {
	return &AppError{Status: 400, Code: ErrCodeApplicationFailed, Message: "failed to submit application"}
}

func NewFetchFailedError() *AppError {
	return &AppError{Status: 500, Code: ErrCodeFetchFailed, Message: "failed to fetch data"}
}

func NewInternalError() *AppError {
	return &AppError{Status: 500, Code: ErrCodeInternalError, Message: "unexpected internal error"}
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: 400, Code: ErrCodeValidationFailed, Message: message}
}

func NewInvalidTransitionError(from, to string) *AppError {
	return &AppError{
		Status:  400,
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

func NewDuplicateApplicationError() *AppError {
	return &AppError{Status: 409, Code: ErrCodeDuplicateApplication, Message: "already applied to this campaign"}
}

func NewCampaignClosedError() *AppError {
	return &AppError{Status: 400, Code: ErrCodeCampaignClosed, Message: "campaign is not recruiting"}
}
