package providers

import (
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// OAuthOptions is the caller-supplied configuration shared by every OAuth
// factory. ClientID and ClientSecret are required; every other field
// overrides the provider's default when set.
type OAuthOptions struct {
	Name             string
	ClientID         string
	ClientSecret     string
	Scope            string
	Version          string
	Params           map[string]string
	AccessTokenURL   string
	RequestTokenURL  string
	AuthorizationURL string
	ProfileURL       string
	Profile          ProfileFunc
}

// DomainOptions configures a domain-scoped provider (Auth0, Okta, Cognito).
// Domain is the tenant host, e.g. "dev-tenant.eu.auth0.com".
type DomainOptions struct {
	OAuthOptions
	Domain string
}

// BattleNetOptions configures Battle.net, whose endpoints are region-scoped
// (us, eu, kr, tw, cn).
type BattleNetOptions struct {
	OAuthOptions
	Region string
}

// IdentityServer4Options configures an IdentityServer4 instance. Because any
// number of instances may coexist, the caller chooses the descriptor id and
// must state the scope explicitly.
type IdentityServer4Options struct {
	DomainOptions
	ID string
}

// Plain OAuth factories. Each merges the caller options over the catalog
// defaults for its provider; the caller value wins field by field.

func Discord(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("discord", opts) }

func Facebook(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("facebook", opts) }

func GitHub(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("github", opts) }

func GitLab(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("gitlab", opts) }

func Google(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("google", opts) }

func Instagram(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("instagram", opts) }

func Line(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("line", opts) }

func LinkedIn(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("linkedin", opts) }

func Netlify(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("netlify", opts) }

func Reddit(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("reddit", opts) }

func Slack(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("slack", opts) }

func Spotify(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("spotify", opts) }

func Twitch(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("twitch", opts) }

func Twitter(opts OAuthOptions) (*OAuthDescriptor, error) { return plainOAuth("twitter", opts) }

// Auth0 configures an Auth0 tenant. Domain is required.
func Auth0(opts DomainOptions) (*OAuthDescriptor, error) {
	return domainOAuth("auth0", "auth0", opts)
}

// Okta configures an Okta org. Domain is required.
func Okta(opts DomainOptions) (*OAuthDescriptor, error) {
	return domainOAuth("okta", "okta", opts)
}

// Cognito configures an AWS Cognito user pool domain. Domain is required.
func Cognito(opts DomainOptions) (*OAuthDescriptor, error) {
	return domainOAuth("cognito", "cognito", opts)
}

// BattleNet configures Battle.net. Region is required.
func BattleNet(opts BattleNetOptions) (*OAuthDescriptor, error) {
	if opts.Region == "" {
		return nil, missingField("battlenet", "region")
	}
	d, err := plainOAuth("battlenet", opts.OAuthOptions)
	if err != nil {
		return nil, err
	}
	d.Region = opts.Region
	substituteURLs(d, "{region}", opts.Region)
	return d, nil
}

// IdentityServer4 configures one IdentityServer4 instance. ID, Domain and
// Scope are required so multiple instances can coexist without guessing.
func IdentityServer4(opts IdentityServer4Options) (*OAuthDescriptor, error) {
	if opts.ID == "" {
		return nil, missingField("identity-server4", "id")
	}
	if opts.Scope == "" {
		return nil, missingField(opts.ID, "scope")
	}
	return domainOAuth("identity-server4", opts.ID, opts.DomainOptions)
}

// OAuth configures a provider outside the built-in catalog. The caller must
// supply the authorization and token endpoints; the profile mapper defaults
// to standard OIDC claims.
func OAuth(id string, opts OAuthOptions) (*OAuthDescriptor, error) {
	if id == "" {
		return nil, missingField("oauth", "id")
	}
	if opts.AuthorizationURL == "" {
		return nil, missingField(id, "authorizationUrl")
	}
	if opts.AccessTokenURL == "" {
		return nil, missingField(id, "accessTokenUrl")
	}
	custom := oauthDefaults{
		name:    id,
		version: "2.0",
		params:  map[string]string{"grant_type": "authorization_code"},
		profile: mapProfile("sub", "name", "email", "picture"),
	}
	return mergeOAuth(custom, id, opts, plainSecret(opts.ClientSecret))
}

func plainOAuth(catalog string, opts OAuthOptions) (*OAuthDescriptor, error) {
	return mergeOAuth(lookupDefaults(catalog), catalog, opts, plainSecret(opts.ClientSecret))
}

func domainOAuth(catalog, id string, opts DomainOptions) (*OAuthDescriptor, error) {
	if opts.Domain == "" {
		return nil, missingField(id, "domain")
	}
	d, err := mergeOAuth(lookupDefaults(catalog), id, opts.OAuthOptions, plainSecret(opts.ClientSecret))
	if err != nil {
		return nil, err
	}
	d.Domain = opts.Domain
	substituteURLs(d, "{domain}", opts.Domain)
	return d, nil
}

func plainSecret(s string) ClientSecret {
	if s == "" {
		return nil
	}
	return SecretString(s)
}

// mergeOAuth is the single merge routine behind every OAuth factory: validate
// the common required fields, start from the default table row, overlay the
// caller options field by field and attach the literal id.
func mergeOAuth(def oauthDefaults, id string, opts OAuthOptions, secret ClientSecret) (*OAuthDescriptor, error) {
	if opts.ClientID == "" {
		return nil, missingField(id, "clientId")
	}
	if secret == nil {
		return nil, missingField(id, "clientSecret")
	}

	params := make(map[string]string, len(def.params)+len(opts.Params))
	for k, v := range def.params {
		params[k] = v
	}
	for k, v := range opts.Params {
		params[k] = v
	}

	profile := def.profile
	if opts.Profile != nil {
		profile = opts.Profile
	}

	return &OAuthDescriptor{
		ID:               id,
		Name:             pick(opts.Name, def.name),
		Version:          pick(opts.Version, def.version),
		Scope:            pick(opts.Scope, def.scope),
		Params:           params,
		AccessTokenURL:   pick(opts.AccessTokenURL, def.accessTokenURL),
		RequestTokenURL:  pick(opts.RequestTokenURL, def.requestTokenURL),
		AuthorizationURL: pick(opts.AuthorizationURL, def.authorizationURL),
		ProfileURL:       pick(opts.ProfileURL, def.profileURL),
		Profile:          profile,
		ClientID:         opts.ClientID,
		ClientSecret:     secret,
	}, nil
}

func pick(override, def string) string {
	if override != "" {
		return override
	}
	return def
}

func substituteURLs(d *OAuthDescriptor, placeholder, value string) {
	d.AccessTokenURL = strings.ReplaceAll(d.AccessTokenURL, placeholder, value)
	d.RequestTokenURL = strings.ReplaceAll(d.RequestTokenURL, placeholder, value)
	d.AuthorizationURL = strings.ReplaceAll(d.AuthorizationURL, placeholder, value)
	d.ProfileURL = strings.ReplaceAll(d.ProfileURL, placeholder, value)
}

// OAuth2Config projects the descriptor into an oauth2 client configuration
// for the layer that performs the actual code exchange. For Apple the
// structured secret is minted into its signed form first.
func (d *OAuthDescriptor) OAuth2Config(redirectURL string) (*oauth2.Config, error) {
	var secret string
	switch s := d.ClientSecret.(type) {
	case SecretString:
		secret = string(s)
	case *AppleSecret:
		signed, err := s.SignedClientSecret(time.Now(), AppleSecretTTL)
		if err != nil {
			return nil, err
		}
		secret = signed
	default:
		return nil, &ConfigurationError{Provider: d.ID, Field: "clientSecret", Reason: "unsupported client secret shape"}
	}

	cfg := &oauth2.Config{
		ClientID:     d.ClientID,
		ClientSecret: secret,
		RedirectURL:  redirectURL,
		Scopes:       strings.Fields(d.Scope),
		Endpoint: oauth2.Endpoint{
			AuthURL:  d.AuthorizationURL,
			TokenURL: d.AccessTokenURL,
		},
	}
	if len(d.Params) > 0 {
		cfg.Endpoint.AuthStyle = oauth2.AuthStyleInParams
	}
	return cfg, nil
}
