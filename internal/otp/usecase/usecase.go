package usecase

// Mailer relays the verification code email; the code itself is generated
// by the caller.
type Mailer interface {
	SendOTP(toEmail, otp string) error
}

// OTPUsecase validates and dispatches verification-code emails
type OTPUsecase interface {
	Send(email, otp string) error
}
