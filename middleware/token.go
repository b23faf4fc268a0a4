package middleware

import (
	"crypto/rsa"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// KeySource supplies the RSA key of the identity provider.
type KeySource interface {
	PublicKey() (*rsa.PublicKey, error)
}

// TokenVerifier checks bearer tokens issued by the identity provider. A
// shared secret selects HMAC; otherwise the provider's RSA key is fetched on
// first use and cached.
type TokenVerifier struct {
	Secret []byte
	Keys   KeySource

	mu        sync.Mutex
	publicKey *rsa.PublicKey
}

func NewTokenVerifier(secret string, keys KeySource) *TokenVerifier {
	return &TokenVerifier{Secret: []byte(secret), Keys: keys}
}

func (v *TokenVerifier) rsaKey() (*rsa.PublicKey, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.publicKey != nil {
		return v.publicKey, nil
	}
	if v.Keys == nil {
		return nil, fmt.Errorf("no JWT secret or public key source configured")
	}
	key, err := v.Keys.PublicKey()
	if err != nil {
		return nil, err
	}
	v.publicKey = key
	return key, nil
}

// Verify parses tokenString and returns its claims when the signature and
// the registered time claims are valid.
func (v *TokenVerifier) Verify(tokenString string) (jwt.MapClaims, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if len(v.Secret) > 0 {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.Secret, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.rsaKey()
	}

	token, err := jwt.Parse(tokenString, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

// SubjectUUID returns the identity provider uuid carried by the token.
func SubjectUUID(claims jwt.MapClaims) (string, error) {
	for _, key := range []string{"uuid", "Uid"} {
		if uid, ok := claims[key].(string); ok && uid != "" {
			return uid, nil
		}
	}
	return "", fmt.Errorf("uuid not found in token")
}
