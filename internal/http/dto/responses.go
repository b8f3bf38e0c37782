package dto

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	OK        bool        `json:"ok"`
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type SelectApplicantsResponse struct {
	SelectedCount int64 `json:"selected_count"`
}
