// Package providers normalizes partial, per-provider sign-in options into
// canonical provider descriptors. Each factory merges caller options over the
// built-in defaults for that provider and returns a fully populated descriptor
// discriminated by its type (oauth, email or credentials). Factories are pure:
// they perform no network or other I/O and may be called concurrently.
package providers

import (
	"context"
	"time"
)

// Type discriminates the three descriptor variants.
type Type string

const (
	TypeOAuth       Type = "oauth"
	TypeEmail       Type = "email"
	TypeCredentials Type = "credentials"
)

// Descriptor is the canonical configuration for one provider instance.
// Exactly three types implement it: *OAuthDescriptor, *EmailDescriptor and
// *CredentialsDescriptor. Consumers branch over ProviderType and narrow with
// AsOAuth, AsEmail or AsCredentials.
type Descriptor interface {
	// ProviderID returns the unique, stable key of the provider instance.
	ProviderID() string

	// ProviderName returns the display name.
	ProviderName() string

	// ProviderType returns the variant discriminant.
	ProviderType() Type
}

// Tokens carries the token material handed to a profile mapper after an
// exchange. The exchange itself happens outside this package.
type Tokens struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	ExpiresAt    time.Time
}

// User is the normalized user record produced by profile mappers and
// authorize callbacks. ID is required; the remaining fields are best effort.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// ProfileFunc maps a raw remote profile plus tokens to a normalized user.
// It is attached to an OAuth descriptor unevaluated; the surrounding
// framework invokes it after fetching the profile.
type ProfileFunc func(profile map[string]interface{}, tokens Tokens) (User, error)

// AuthorizeFunc checks submitted credential field values. A nil user with a
// nil error signals "no match".
type AuthorizeFunc func(ctx context.Context, credentials map[string]string) (*User, error)

// VerificationRequest is passed to an email provider's sender callback.
type VerificationRequest struct {
	Identifier string
	URL        string
	BaseURL    string
	Token      string
	Provider   *EmailDescriptor
}

// SendVerificationFunc delivers a magic-link verification request.
type SendVerificationFunc func(ctx context.Context, req VerificationRequest) error

// ClientSecret is the provider-dependent secret shape: a plain SecretString
// for every OAuth provider except Apple, which requires *AppleSecret.
type ClientSecret interface {
	clientSecret()
}

// SecretString is the plain string client secret.
type SecretString string

func (SecretString) clientSecret() {}

// OAuthDescriptor is the oauth variant. Domain is populated only for
// domain-scoped providers (Auth0, Okta, Cognito, IdentityServer4) and Region
// only for BattleNet.
type OAuthDescriptor struct {
	ID               string
	Name             string
	Version          string
	Scope            string
	Params           map[string]string
	AccessTokenURL   string
	RequestTokenURL  string
	AuthorizationURL string
	ProfileURL       string
	Profile          ProfileFunc
	ClientID         string
	ClientSecret     ClientSecret
	Domain           string
	Region           string
}

func (d *OAuthDescriptor) ProviderID() string   { return d.ID }
func (d *OAuthDescriptor) ProviderName() string { return d.Name }
func (d *OAuthDescriptor) ProviderType() Type   { return TypeOAuth }

// SMTPServer is the structured form of an email provider's server target.
type SMTPServer struct {
	Host     string
	Port     int
	Username string
	Password string
}

// EmailDescriptor is the email (magic link) variant. Server holds the
// connection string form; SMTP the structured form. At most one is set.
type EmailDescriptor struct {
	ID                      string
	Name                    string
	Server                  string
	SMTP                    *SMTPServer
	From                    string
	MaxAge                  int
	SendVerificationRequest SendVerificationFunc
}

func (d *EmailDescriptor) ProviderID() string   { return d.ID }
func (d *EmailDescriptor) ProviderName() string { return d.Name }
func (d *EmailDescriptor) ProviderType() Type   { return TypeEmail }

// CredentialField describes one input of a credentials sign-in form. The
// metadata is purely descriptive; it never influences authorization.
type CredentialField struct {
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
}

// CredentialsDescriptor is the credentials variant.
type CredentialsDescriptor struct {
	ID          string
	Name        string
	Credentials map[string]CredentialField
	Authorize   AuthorizeFunc
}

func (d *CredentialsDescriptor) ProviderID() string   { return d.ID }
func (d *CredentialsDescriptor) ProviderName() string { return d.Name }
func (d *CredentialsDescriptor) ProviderType() Type   { return TypeCredentials }

// AsOAuth narrows a descriptor to the oauth variant.
func AsOAuth(d Descriptor) (*OAuthDescriptor, bool) {
	o, ok := d.(*OAuthDescriptor)
	return o, ok
}

// AsEmail narrows a descriptor to the email variant.
func AsEmail(d Descriptor) (*EmailDescriptor, bool) {
	e, ok := d.(*EmailDescriptor)
	return e, ok
}

// AsCredentials narrows a descriptor to the credentials variant.
func AsCredentials(d Descriptor) (*CredentialsDescriptor, bool) {
	c, ok := d.(*CredentialsDescriptor)
	return c, ok
}
