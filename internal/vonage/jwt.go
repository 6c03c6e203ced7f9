package vonage

import (
	"crypto/hmac"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 15 * time.Minute

// TokenSource mints the short-lived RS256 application JWTs the Messages API
// expects as bearer auth. The private key is read and parsed once; a broken
// key file is a startup failure.
type TokenSource struct {
	applicationID string
	key           *rsa.PrivateKey
}

func NewTokenSource(applicationID, privateKeyPath string) (*TokenSource, error) {
	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return &TokenSource{applicationID: applicationID, key: key}, nil
}

// Token signs a fresh application JWT. One per request keeps expiry handling
// trivial at this call volume.
func (ts *TokenSource) Token() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"application_id": ts.applicationID,
		"iat":            now.Unix(),
		"exp":            now.Add(tokenTTL).Unix(),
		"jti":            uuid.New().String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.key)
}

// VerifyWebhookToken validates the signed JWT a webhook call carries: HS256
// signature with the account's signature secret, an api_key claim matching
// the configured key, and, when the payload_hash claim is present, a SHA-256
// match against the raw request body.
func VerifyWebhookToken(token, secret, apiKey string, body []byte) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return fmt.Errorf("verify webhook token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("verify webhook token: unexpected claims shape")
	}

	if k, _ := claims["api_key"].(string); k != apiKey {
		return errors.New("verify webhook token: api_key mismatch")
	}

	if hash, _ := claims["payload_hash"].(string); hash != "" {
		sum := sha256.Sum256(body)
		if !hmac.Equal([]byte(hash), []byte(hex.EncodeToString(sum[:]))) {
			return errors.New("verify webhook token: payload hash mismatch")
		}
	}

	return nil
}
