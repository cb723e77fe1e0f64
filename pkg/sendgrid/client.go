package sendgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hafez-backend/pkg/apperr"
)

const defaultBaseURL = "https://api.sendgrid.com"

type Client struct {
	apiKey      string
	senderEmail string
	senderName  string
	httpClient  *http.Client

	// BaseURL can be overridden in tests
	BaseURL string
}

func NewClient(apiKey, senderEmail, senderName string) *Client {
	return &Client{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		BaseURL:     defaultBaseURL,
	}
}

// SendGrid v3 request format
type sgEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
type sgPersonalization struct {
	To []sgEmail `json:"to"`
}
type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
type sgRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgEmail             `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

// SendOTP relays the caller-generated verification code to the address in
// a branded HTML email.
func (c *Client) SendOTP(toEmail, otp string) error {
	if c.apiKey == "" {
		return &apperr.UpstreamError{Message: "email service is not configured", AuthFailure: true}
	}

	body := sgRequest{
		Personalizations: []sgPersonalization{
			{To: []sgEmail{{Email: toEmail}}},
		},
		From: sgEmail{
			Email: c.senderEmail,
			Name:  c.senderName,
		},
		Subject: fmt.Sprintf("Your Verification Code - %s", c.senderName),
		Content: []sgContent{
			{
				Type:  "text/html",
				Value: otpHTML(otp),
			},
		},
	}

	bodyBytes, _ := json.Marshal(body)

	req, err := http.NewRequest(
		"POST",
		c.BaseURL+"/v3/mail/send",
		bytes.NewBuffer(bodyBytes),
	)
	if err != nil {
		return &apperr.UpstreamError{Message: "failed to build email request: " + err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperr.UpstreamError{Message: "failed to reach email service: " + err.Error()}
	}
	defer resp.Body.Close()

	// SendGrid answers 202 on success
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &apperr.UpstreamError{
			Message:     fmt.Sprintf("email service rejected credentials: status=%d", resp.StatusCode),
			AuthFailure: true,
		}
	}
	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &apperr.UpstreamError{
			Message: fmt.Sprintf("email service error: status=%d body=%s", resp.StatusCode, respBody),
		}
	}

	return nil
}
