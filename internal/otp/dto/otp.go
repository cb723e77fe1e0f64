package dto

type SendOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
