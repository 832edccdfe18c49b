package providers

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func testAppleSecret(t *testing.T) (*AppleSecret, *ecdsa.PrivateKey) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal key: %v", err)
	}
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})

	return &AppleSecret{
		AppleID:    "com.example.app",
		TeamID:     "TEAM123456",
		PrivateKey: string(pemKey),
		KeyID:      "KEY1234567",
	}, key
}

func TestApplePlainStringSecretRejected(t *testing.T) {
	_, err := Apple(AppleOptions{
		OAuthOptions: OAuthOptions{ClientID: "com.example.app", ClientSecret: "plain"},
	})
	assertConfigError(t, err, "apple", "clientSecret")
}

func TestAppleStructuredSecretAccepted(t *testing.T) {
	secret, _ := testAppleSecret(t)
	d, err := Apple(AppleOptions{
		OAuthOptions: OAuthOptions{ClientID: "com.example.app"},
		Secret:       secret,
	})
	if err != nil {
		t.Fatalf("failed to build apple descriptor: %v", err)
	}
	got, ok := d.ClientSecret.(*AppleSecret)
	if !ok {
		t.Fatalf("expected *AppleSecret, got %T", d.ClientSecret)
	}
	if *got != *secret {
		t.Errorf("structured secret was altered: %+v", got)
	}
	if d.Scope != "name email" {
		t.Errorf("unexpected default scope: %q", d.Scope)
	}
	if d.Params["response_mode"] != "form_post" {
		t.Errorf("expected form_post response mode, got %q", d.Params["response_mode"])
	}
}

func TestAppleSecretMissingField(t *testing.T) {
	secret, _ := testAppleSecret(t)
	secret.TeamID = ""
	_, err := Apple(AppleOptions{
		OAuthOptions: OAuthOptions{ClientID: "com.example.app"},
		Secret:       secret,
	})
	assertConfigError(t, err, "apple", "clientSecret.teamId")
}

func TestSignedClientSecret(t *testing.T) {
	secret, key := testAppleSecret(t)
	now := time.Now().Truncate(time.Second)

	signed, err := secret.SignedClientSecret(now, time.Hour)
	if err != nil {
		t.Fatalf("failed to mint client secret: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return &key.PublicKey, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("minted secret does not verify: %v", err)
	}
	if token.Header["kid"] != "KEY1234567" {
		t.Errorf("kid header mismatch: %v", token.Header["kid"])
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["iss"] != "TEAM123456" {
		t.Errorf("iss mismatch: %v", claims["iss"])
	}
	if claims["sub"] != "com.example.app" {
		t.Errorf("sub mismatch: %v", claims["sub"])
	}
	if claims["aud"] != "https://appleid.apple.com" {
		t.Errorf("aud mismatch: %v", claims["aud"])
	}
	if int64(claims["exp"].(float64)) != now.Add(time.Hour).Unix() {
		t.Errorf("exp mismatch: %v", claims["exp"])
	}
}

func TestAppleOAuth2ConfigMintsSecret(t *testing.T) {
	secret, _ := testAppleSecret(t)
	d, err := Apple(AppleOptions{
		OAuthOptions: OAuthOptions{ClientID: "com.example.app"},
		Secret:       secret,
	})
	if err != nil {
		t.Fatalf("failed to build apple descriptor: %v", err)
	}
	cfg, err := d.OAuth2Config("https://app.test/callback/apple")
	if err != nil {
		t.Fatalf("failed to project oauth2 config: %v", err)
	}
	if cfg.ClientSecret == "" {
		t.Error("expected a minted client secret")
	}
}
