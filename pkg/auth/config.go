// Package auth wires the provider catalog into an application: it assembles
// a provider collection from environment variables and exposes the app-facing
// provider list over HTTP. Sign-in and callback handling live one layer up.
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/davrd/gatekit/pkg/providers"
)

// Config holds the assembled provider collection and the base URL used to
// derive sign-in and callback URLs.
type Config struct {
	BaseURL   string
	Providers *providers.Collection
}

// NewConfig assembles the provider collection from environment variables.
// AUTH_PROVIDERS lists the provider names; each provider reads its options
// from OAUTH_<NAME>_* variables, which override the built-in defaults.
func NewConfig() (*Config, error) {
	cfg := &Config{
		BaseURL: getEnv("AUTH_BASE_URL", "http://localhost:8080"),
	}

	var descriptors []providers.Descriptor
	for _, name := range strings.Split(getEnv("AUTH_PROVIDERS", ""), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		d, err := descriptorFromEnv(name)
		if err != nil {
			return nil, fmt.Errorf("error configuring provider '%s': %w", name, err)
		}
		descriptors = append(descriptors, d)
	}

	collection, err := providers.NewCollection(descriptors...)
	if err != nil {
		return nil, err
	}
	cfg.Providers = collection
	return cfg, nil
}

// descriptorFromEnv builds one descriptor from OAUTH_<NAME>_* variables.
// Unknown names fall back to the custom OAuth factory, which additionally
// needs AUTH_URL and TOKEN_URL.
func descriptorFromEnv(name string) (providers.Descriptor, error) {
	prefix := fmt.Sprintf("OAUTH_%s_", strings.ToUpper(strings.ReplaceAll(name, "-", "_")))

	opts := providers.OAuthOptions{
		Name:         os.Getenv(prefix + "NAME"),
		ClientID:     os.Getenv(prefix + "CLIENT_ID"),
		ClientSecret: os.Getenv(prefix + "CLIENT_SECRET"),
		Scope:        os.Getenv(prefix + "SCOPE"),
	}

	switch name {
	case "discord":
		return providers.Discord(opts)
	case "facebook":
		return providers.Facebook(opts)
	case "github":
		return providers.GitHub(opts)
	case "gitlab":
		return providers.GitLab(opts)
	case "google":
		return providers.Google(opts)
	case "instagram":
		return providers.Instagram(opts)
	case "line":
		return providers.Line(opts)
	case "linkedin":
		return providers.LinkedIn(opts)
	case "netlify":
		return providers.Netlify(opts)
	case "reddit":
		return providers.Reddit(opts)
	case "slack":
		return providers.Slack(opts)
	case "spotify":
		return providers.Spotify(opts)
	case "twitch":
		return providers.Twitch(opts)
	case "twitter":
		return providers.Twitter(opts)
	case "auth0":
		return providers.Auth0(providers.DomainOptions{
			OAuthOptions: opts,
			Domain:       os.Getenv(prefix + "DOMAIN"),
		})
	case "okta":
		return providers.Okta(providers.DomainOptions{
			OAuthOptions: opts,
			Domain:       os.Getenv(prefix + "DOMAIN"),
		})
	case "cognito":
		return providers.Cognito(providers.DomainOptions{
			OAuthOptions: opts,
			Domain:       os.Getenv(prefix + "DOMAIN"),
		})
	case "battlenet":
		return providers.BattleNet(providers.BattleNetOptions{
			OAuthOptions: opts,
			Region:       os.Getenv(prefix + "REGION"),
		})
	case "identity-server4":
		return providers.IdentityServer4(providers.IdentityServer4Options{
			ID: getEnv(prefix+"ID", name),
			DomainOptions: providers.DomainOptions{
				OAuthOptions: opts,
				Domain:       os.Getenv(prefix + "DOMAIN"),
			},
		})
	case "apple":
		appleOpts := opts
		appleOpts.ClientSecret = ""
		return providers.Apple(providers.AppleOptions{
			OAuthOptions: appleOpts,
			Secret: &providers.AppleSecret{
				AppleID:    getEnv(prefix+"APPLE_ID", opts.ClientID),
				TeamID:     os.Getenv(prefix + "TEAM_ID"),
				PrivateKey: os.Getenv(prefix + "PRIVATE_KEY"),
				KeyID:      os.Getenv(prefix + "KEY_ID"),
			},
		})
	case "email", "credentials":
		return nil, fmt.Errorf("provider '%s' carries callbacks and cannot be configured from the environment", name)
	default:
		opts.AuthorizationURL = os.Getenv(prefix + "AUTH_URL")
		opts.AccessTokenURL = os.Getenv(prefix + "TOKEN_URL")
		opts.ProfileURL = os.Getenv(prefix + "PROFILE_URL")
		return providers.OAuth(name, opts)
	}
}

// getEnv retrieves the value of the environment variable named by the key.
// It returns the value, or the defaultValue if the variable is not present.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
