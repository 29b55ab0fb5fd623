package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	checkoutFormInitPath     = "/payment/iyzipos/checkoutform/initialize/auth/ecom"
	checkoutFormRetrievePath = "/payment/iyzipos/checkoutform/auth/ecom/detail"
)

// Sabit istek alanları
const (
	Locale       = "tr"
	CurrencyTRY  = "TRY"
	GroupProduct = "PRODUCT"
	ItemVirtual  = "VIRTUAL"
)

type Buyer struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Surname             string `json:"surname"`
	Email               string `json:"email"`
	IdentityNumber      string `json:"identityNumber"`
	RegistrationAddress string `json:"registrationAddress"`
	IP                  string `json:"ip"`
	City                string `json:"city"`
	Country             string `json:"country"`
}

type Address struct {
	ContactName string `json:"contactName"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Address     string `json:"address"`
}

type BasketItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category1 string `json:"category1"`
	ItemType  string `json:"itemType"`
	// Fiyat kuruş kaymasın diye string (örn. "139.00")
	Price string `json:"price"`
}

type CheckoutFormRequest struct {
	Locale          string       `json:"locale"`
	ConversationID  string       `json:"conversationId"`
	Price           string       `json:"price"`
	PaidPrice       string       `json:"paidPrice"`
	Currency        string       `json:"currency"`
	BasketID        string       `json:"basketId"`
	PaymentGroup    string       `json:"paymentGroup"`
	CallbackURL     string       `json:"callbackUrl"`
	Buyer           Buyer        `json:"buyer"`
	ShippingAddress Address      `json:"shippingAddress"`
	BillingAddress  Address      `json:"billingAddress"`
	BasketItems     []BasketItem `json:"basketItems"`
}

type retrieveRequest struct {
	Locale string `json:"locale"`
	Token  string `json:"token"`
}

// CheckoutFormResult is the provider response for both initialize and retrieve.
type CheckoutFormResult struct {
	Status              string `json:"status"`
	ErrorMessage        string `json:"errorMessage"`
	CheckoutFormContent string `json:"checkoutFormContent"`
	Token               string `json:"token"`
	PaymentStatus       string `json:"paymentStatus"`
	PaymentID           string `json:"paymentId"`
}

// PaymentSucceeded reports the "request ok AND payment ok" combination. The
// provider is inconsistent about the casing of paymentStatus, so compare
// case-insensitively.
func (r *CheckoutFormResult) PaymentSucceeded() bool {
	return r.Status == "success" && strings.EqualFold(r.PaymentStatus, "SUCCESS")
}

type IyzicoClient struct {
	apiKey    string
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewIyzicoClient(apiKey, secretKey, baseURL string) *IyzicoClient {
	return &IyzicoClient{
		apiKey:    apiKey,
		secretKey: secretKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// InitializeCheckoutForm hosted ödeme formunu başlatır.
func (c *IyzicoClient) InitializeCheckoutForm(ctx context.Context, req *CheckoutFormRequest) (*CheckoutFormResult, error) {
	return c.post(ctx, checkoutFormInitPath, req)
}

// RetrieveCheckoutForm callback token'ı ile kesin ödeme sonucunu sorgular.
func (c *IyzicoClient) RetrieveCheckoutForm(ctx context.Context, token string) (*CheckoutFormResult, error) {
	return c.post(ctx, checkoutFormRetrievePath, retrieveRequest{Locale: Locale, Token: token})
}

func (c *IyzicoClient) post(ctx context.Context, path string, body interface{}) (*CheckoutFormResult, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode iyzico request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	randomKey := fmt.Sprintf("%d", time.Now().UnixNano())
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.authorization(randomKey, path, payload))
	httpReq.Header.Set("x-iyzi-rnd", randomKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("iyzico request failed: %w", err)
	}
	defer resp.Body.Close()

	var result CheckoutFormResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode iyzico response: %w", err)
	}

	return &result, nil
}

// authorization IYZWSv2 imzasını üretir:
// HMAC-SHA256(secretKey, randomKey + uriPath + requestBody)
func (c *IyzicoClient) authorization(randomKey, path string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(c.secretKey))
	mac.Write([]byte(randomKey + path))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	auth := fmt.Sprintf("apiKey:%s&randomKey:%s&signature:%s", c.apiKey, randomKey, signature)
	return "IYZWSv2 " + base64.StdEncoding.EncodeToString([]byte(auth))
}
