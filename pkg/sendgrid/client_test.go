package sendgrid

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hafez-backend/pkg/apperr"
)

func testClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", "info@hafezquraan.com", "Hafez Quraan")
	client.BaseURL = server.URL
	return client
}

func TestSendOTP_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key", "info@hafezquraan.com", "Hafez Quraan")
	client.BaseURL = server.URL

	if err := client.SendOTP("to@example.com", "123456"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/v3/mail/send" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth = %q", gotAuth)
	}

	var req sgRequest
	if err := json.Unmarshal(gotBody, &req); err != nil {
		t.Fatalf("body: %v", err)
	}
	if req.Personalizations[0].To[0].Email != "to@example.com" {
		t.Errorf("to = %+v", req.Personalizations)
	}
	if !strings.Contains(req.Content[0].Value, "123456") {
		t.Error("HTML body must carry the OTP")
	}
}

func TestSendOTP_AuthRejection(t *testing.T) {
	client := testClient(t, http.StatusUnauthorized, `{"errors":[]}`)

	err := client.SendOTP("to@example.com", "123456")
	var upstream *apperr.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !upstream.AuthFailure {
		t.Error("401 must be reported as an authorization failure")
	}
}

func TestSendOTP_GenericFailure(t *testing.T) {
	client := testClient(t, http.StatusBadRequest, `{"errors":["bad to"]}`)

	err := client.SendOTP("to@example.com", "123456")
	var upstream *apperr.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.AuthFailure {
		t.Error("400 is not an authorization failure")
	}
}

func TestSendOTP_MissingKey(t *testing.T) {
	client := NewClient("", "info@hafezquraan.com", "Hafez Quraan")

	err := client.SendOTP("to@example.com", "123456")
	var upstream *apperr.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !upstream.AuthFailure {
		t.Error("missing key degrades to an authorization failure")
	}
}
