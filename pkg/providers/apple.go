package providers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lestrrat-go/jwx/jwk"
)

// AppleSecretTTL is the validity window used when minting Apple client
// secrets. Apple caps the expiry at roughly six months.
const AppleSecretTTL = 180 * 24 * time.Hour

// AppleSecret is Apple's structured client secret. Sign In with Apple does
// not issue a static secret; instead the service expects an ES256 JWT minted
// from these four fields.
type AppleSecret struct {
	AppleID    string
	TeamID     string
	PrivateKey string
	KeyID      string
}

func (*AppleSecret) clientSecret() {}

// AppleOptions configures Sign In with Apple. The plain ClientSecret field
// must stay empty; Secret carries the structured form instead.
type AppleOptions struct {
	OAuthOptions
	Secret *AppleSecret
}

// Apple configures Sign In with Apple. A plain-string client secret is
// rejected: Apple only accepts the structured 4-field secret.
func Apple(opts AppleOptions) (*OAuthDescriptor, error) {
	if opts.ClientSecret != "" {
		return nil, &ConfigurationError{
			Provider: "apple",
			Field:    "clientSecret",
			Reason:   "apple requires the structured client secret, not a plain string",
		}
	}
	if opts.Secret == nil {
		return nil, missingField("apple", "clientSecret")
	}
	for field, value := range map[string]string{
		"clientSecret.appleId":    opts.Secret.AppleID,
		"clientSecret.teamId":     opts.Secret.TeamID,
		"clientSecret.privateKey": opts.Secret.PrivateKey,
		"clientSecret.keyId":      opts.Secret.KeyID,
	} {
		if value == "" {
			return nil, missingField("apple", field)
		}
	}
	return mergeOAuth(lookupDefaults("apple"), "apple", opts.OAuthOptions, opts.Secret)
}

// SignedClientSecret mints the ES256 client-secret JWT Apple expects during
// the token exchange. The private key must be the PEM-encoded P-256 key
// downloaded from the Apple developer portal.
func (s *AppleSecret) SignedClientSecret(now time.Time, ttl time.Duration) (string, error) {
	key, err := jwk.ParseKey([]byte(s.PrivateKey), jwk.WithPEM(true))
	if err != nil {
		return "", fmt.Errorf("failed to parse apple private key: %w", err)
	}

	var raw interface{}
	if err := key.Raw(&raw); err != nil {
		return "", fmt.Errorf("failed to materialize apple private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.MapClaims{
		"iss": s.TeamID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
		"aud": "https://appleid.apple.com",
		"sub": s.AppleID,
	})
	token.Header["kid"] = s.KeyID

	signed, err := token.SignedString(raw)
	if err != nil {
		return "", fmt.Errorf("failed to sign apple client secret: %w", err)
	}
	return signed, nil
}
