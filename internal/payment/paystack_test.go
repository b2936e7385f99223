package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestPaystack(server *httptest.Server) *Paystack {
	p := NewPaystack("sk_test_secret", "http://localhost:3001/api/payment/callback")
	p.baseURL = server.URL
	p.httpClient = server.Client()
	return p
}

func TestInitializePayment(t *testing.T) {
	var got paystackInitRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk_test_secret" {
			t.Errorf("unexpected authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc123","access_code":"abc123","reference":"` + got.Reference + `"}}`))
	}))
	defer server.Close()

	p := newTestPaystack(server)
	result, err := p.InitializePayment(context.Background(), 2500, "a@b.co", "device-1")
	if err != nil {
		t.Fatalf("InitializePayment: %v", err)
	}

	if got.Amount != 250000 {
		t.Errorf("expected amount in kobo 250000, got %d", got.Amount)
	}
	if got.Email != "a@b.co" {
		t.Errorf("unexpected email %q", got.Email)
	}
	if got.Currency != "NGN" {
		t.Errorf("unexpected currency %q", got.Currency)
	}
	if !strings.HasSuffix(got.CallbackURL, "/api/payment/callback") {
		t.Errorf("unexpected callback url %q", got.CallbackURL)
	}
	if got.Metadata.SessionID != "device-1" {
		t.Errorf("unexpected session id %q", got.Metadata.SessionID)
	}
	if result.AuthorizationURL != "https://checkout.paystack.com/abc123" {
		t.Errorf("unexpected authorization url %q", result.AuthorizationURL)
	}
	if result.Amount != 2500 {
		t.Errorf("expected amount in naira 2500, got %d", result.Amount)
	}
	if result.Reference == "" || result.OrderID == "" {
		t.Error("expected reference and order id to be set")
	}
}

func TestInitializePaymentGatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":false,"message":"Invalid email address"}`))
	}))
	defer server.Close()

	p := newTestPaystack(server)
	_, err := p.InitializePayment(context.Background(), 2500, "bad", "device-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Invalid email address") {
		t.Errorf("expected gateway message in error, got %v", err)
	}
}

func TestVerifyPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/ref-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"status":"success","amount":250000,"paid_at":"2026-03-01T12:00:00Z","reference":"ref-1","metadata":{"orderId":"o-1","sessionId":"device-1"}}}`))
	}))
	defer server.Close()

	p := newTestPaystack(server)
	result, err := p.VerifyPayment(context.Background(), "ref-1")
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if result.Status != StatusSuccess {
		t.Errorf("unexpected status %q", result.Status)
	}
	if result.Amount != 250000 {
		t.Errorf("unexpected amount %d", result.Amount)
	}
	if result.Metadata.SessionID != "device-1" {
		t.Errorf("unexpected session id %q", result.Metadata.SessionID)
	}
}

func TestVerifyPaymentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	p := newTestPaystack(server)
	if _, err := p.VerifyPayment(context.Background(), "ref-1"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMockGatewayRoundTrip(t *testing.T) {
	m := NewMock()
	init, err := m.InitializePayment(context.Background(), 2500, "a@b.co", "device-1")
	if err != nil {
		t.Fatalf("InitializePayment: %v", err)
	}
	if init.Reference == "" {
		t.Fatal("expected reference")
	}

	verify, err := m.VerifyPayment(context.Background(), init.Reference)
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if verify.Status != StatusSuccess {
		t.Errorf("unexpected status %q", verify.Status)
	}
	if verify.Metadata.SessionID != "device-1" {
		t.Errorf("mock should echo the session id, got %q", verify.Metadata.SessionID)
	}
}
