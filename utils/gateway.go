package utils

import (
	"athletex/config"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PaymentIntent is the gateway's representation of a pending charge.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// gatewayAPIError defines the structure of an error response from the gateway.
type gatewayAPIError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent asks the payment gateway for a new intent over the given
// amount (in the currency's smallest unit) and returns the intent holding the
// client secret the frontend confirms the charge with.
func CreatePaymentIntent(amount int64, currency string) (*PaymentIntent, error) {
	secretKey := config.AppConfig.GatewaySecretKey
	if secretKey == "" {
		log.Println("CRITICAL: GATEWAY_SECRET_KEY environment variable is not set.")
		return nil, fmt.Errorf("server is not configured for payments (missing secret key)")
	}

	client := resty.New().SetTimeout(15 * time.Second)
	var successResp PaymentIntent
	var errorResp gatewayAPIError

	resp, err := client.R().
		SetAuthToken(secretKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Idempotency-Key", uuid.NewString()).
		SetFormData(map[string]string{
			"amount":                 fmt.Sprintf("%d", amount),
			"currency":               currency,
			"payment_method_types[]": "card",
		}).
		SetResult(&successResp).
		SetError(&errorResp).
		Post(config.AppConfig.GatewayApiURL + "/payment_intents")

	if err != nil {
		// Network-level failure (connect, DNS, timeout)
		log.Printf("ERROR: payment intent request failed: %v", err)
		return nil, fmt.Errorf("could not connect to payment provider: %w", err)
	}

	if resp.IsError() {
		log.Printf("ERROR: gateway returned %s creating intent: %s", resp.Status(), errorResp.Error.Message)
		if errorResp.Error.Message != "" {
			return nil, fmt.Errorf("gateway error: %s", errorResp.Error.Message)
		}
		return nil, fmt.Errorf("gateway error: received status %s", resp.Status())
	}

	if successResp.ClientSecret == "" {
		log.Printf("WARN: gateway accepted the request but returned no client secret (intent %q)", successResp.ID)
		return nil, fmt.Errorf("payment intent creation failed")
	}

	return &successResp, nil
}
