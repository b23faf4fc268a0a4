package httpServices

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// PublicKeyResponse is the identity provider's key document.
type PublicKeyResponse struct {
	Key string `json:"key"`
}

// SSOClient talks to the identity provider that issues user tokens.
type SSOClient struct {
	httpClient   *http.Client
	publicKeyURL string
}

func NewClient(publicKeyURL string) *SSOClient {
	return &SSOClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		publicKeyURL: publicKeyURL,
	}
}

// PublicKey fetches the PEM encoded RSA key tokens are signed with.
func (c *SSOClient) PublicKey() (*rsa.PublicKey, error) {
	if c.publicKeyURL == "" {
		return nil, errors.New("public key URL is not configured")
	}

	httpReq, err := http.NewRequest(http.MethodGet, c.publicKeyURL, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch public key: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("SSO public key endpoint returned non-OK status: " + resp.Status)
	}

	var keyResp PublicKeyResponse
	if err := json.NewDecoder(resp.Body).Decode(&keyResp); err != nil {
		return nil, fmt.Errorf("failed to decode public key response: %w", err)
	}

	block, _ := pem.Decode([]byte(keyResp.Key))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, errors.New("failed to decode PEM block containing public key")
	}

	pubKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPubKey, ok := pubKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaPubKey, nil
}
