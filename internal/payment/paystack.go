package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const paystackBaseURL = "https://api.paystack.co"

// Paystack is the live gateway client. It talks to the Paystack
// transaction REST API using the account's secret key.
type Paystack struct {
	secretKey   string
	callbackURL string
	baseURL     string
	httpClient  *http.Client
}

func NewPaystack(secretKey, callbackURL string) *Paystack {
	return &Paystack{
		secretKey:   secretKey,
		callbackURL: callbackURL,
		baseURL:     paystackBaseURL,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type paystackInitRequest struct {
	Reference   string   `json:"reference"`
	Amount      int      `json:"amount"` // kobo
	Email       string   `json:"email"`
	Currency    string   `json:"currency"`
	CallbackURL string   `json:"callback_url"`
	Metadata    Metadata `json:"metadata"`
}

type paystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string    `json:"status"`
		Amount    int       `json:"amount"` // kobo
		PaidAt    time.Time `json:"paid_at"`
		Reference string    `json:"reference"`
		Metadata  Metadata  `json:"metadata"`
	} `json:"data"`
}

func (p *Paystack) InitializePayment(ctx context.Context, total int, email, sessionID string) (*InitResult, error) {
	reference := uuid.NewString()
	orderID := uuid.NewString()

	body, err := json.Marshal(paystackInitRequest{
		Reference:   reference,
		Amount:      total * 100, // Paystack expects the amount in kobo
		Email:       email,
		Currency:    "NGN",
		CallbackURL: p.callbackURL,
		Metadata:    Metadata{OrderID: orderID, SessionID: sessionID},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack initialize returned status %d", resp.StatusCode)
	}

	var out paystackInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, fmt.Errorf("paystack initialize failed: %s", out.Message)
	}

	return &InitResult{
		OrderID:          orderID,
		Reference:        reference,
		AuthorizationURL: out.Data.AuthorizationURL,
		Amount:           total,
	}, nil
}

func (p *Paystack) VerifyPayment(ctx context.Context, reference string) (*VerifyResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", p.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("paystack verify returned status %d", resp.StatusCode)
	}

	var out paystackVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.Status {
		return nil, fmt.Errorf("paystack verify failed: %s", out.Message)
	}

	return &VerifyResult{
		Status:    out.Data.Status,
		Amount:    out.Data.Amount,
		PaidAt:    out.Data.PaidAt,
		Reference: out.Data.Reference,
		Metadata:  out.Data.Metadata,
	}, nil
}
