package dtos

// OTP endpoints accept form posts. Presence is the only rule here: the
// flow dispatches to whatever address the user typed, so no format
// validation happens at this boundary.

type SendOTPRequest struct {
	Email string `form:"email" validate:"required"`
}

type VerifyOTPRequest struct {
	Email string `form:"email" validate:"required"`
	OTP   string `form:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	Email string `form:"email" validate:"required"`
}

// OTPResponse is the AJAX body. Exactly one of Message or Error is set.
type OTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
