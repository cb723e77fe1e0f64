package usecase

import (
	"strings"

	"hafez-backend/pkg/apperr"
)

// otpUsecase implements OTPUsecase interface
type otpUsecase struct {
	mailer Mailer
}

// NewOTPUsecase creates a new instance of otpUsecase
func NewOTPUsecase(mailer Mailer) OTPUsecase {
	return &otpUsecase{
		mailer: mailer,
	}
}

func (u *otpUsecase) Send(email, otp string) error {
	if email == "" || otp == "" {
		return apperr.Validation("email and OTP are required")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return apperr.Validation("invalid email address")
	}

	return u.mailer.SendOTP(email, otp)
}
