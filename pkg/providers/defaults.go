package providers

import (
	"fmt"
	"strconv"
)

// oauthDefaults is one row of the default table: every OAuth descriptor field
// except the caller-owned ClientID/ClientSecret and the literal id.
type oauthDefaults struct {
	name             string
	version          string
	scope            string
	params           map[string]string
	accessTokenURL   string
	requestTokenURL  string
	authorizationURL string
	profileURL       string
	profile          ProfileFunc
}

// defaultConfigs holds the built-in defaults for every provider in the
// catalog. Domain-scoped entries keep a {domain} placeholder in their URLs,
// BattleNet a {region} placeholder; factories substitute them after
// validating the corresponding option.
var defaultConfigs = map[string]oauthDefaults{
	"apple": {
		name:             "Apple",
		version:          "2.0",
		scope:            "name email",
		params:           map[string]string{"grant_type": "authorization_code", "response_mode": "form_post"},
		accessTokenURL:   "https://appleid.apple.com/auth/token",
		authorizationURL: "https://appleid.apple.com/auth/authorize?response_type=code",
		profile:          mapProfile("sub", "name", "email", ""),
	},
	"auth0": {
		name:             "Auth0",
		version:          "2.0",
		scope:            "openid profile email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://{domain}/oauth/token",
		authorizationURL: "https://{domain}/authorize?response_type=code",
		profileURL:       "https://{domain}/userinfo",
		profile:          mapProfile("sub", "name", "email", "picture"),
	},
	"battlenet": {
		name:             "Battle.net",
		version:          "2.0",
		scope:            "openid",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://{region}.battle.net/oauth/token",
		authorizationURL: "https://{region}.battle.net/oauth/authorize?response_type=code",
		profileURL:       "https://{region}.battle.net/oauth/userinfo",
		profile:          mapProfile("sub", "battletag", "", ""),
	},
	"cognito": {
		name:             "Cognito",
		version:          "2.0",
		scope:            "openid profile email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://{domain}/oauth2/token",
		authorizationURL: "https://{domain}/oauth2/authorize?response_type=code",
		profileURL:       "https://{domain}/oauth2/userInfo",
		profile:          mapProfile("sub", "name", "email", "picture"),
	},
	"discord": {
		name:             "Discord",
		version:          "2.0",
		scope:            "identify email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://discord.com/api/oauth2/token",
		authorizationURL: "https://discord.com/api/oauth2/authorize?response_type=code",
		profileURL:       "https://discord.com/api/users/@me",
		profile:          mapProfile("id", "username", "email", "avatar"),
	},
	"facebook": {
		name:             "Facebook",
		version:          "2.0",
		scope:            "email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://graph.facebook.com/oauth/access_token",
		authorizationURL: "https://www.facebook.com/v7.0/dialog/oauth?response_type=code",
		profileURL:       "https://graph.facebook.com/me?fields=id,name,email,picture",
		profile:          mapProfile("id", "name", "email", "picture"),
	},
	"github": {
		name:             "GitHub",
		version:          "2.0",
		scope:            "user",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://github.com/login/oauth/access_token",
		authorizationURL: "https://github.com/login/oauth/authorize",
		profileURL:       "https://api.github.com/user",
		profile:          mapProfile("id", "name", "email", "avatar_url"),
	},
	"gitlab": {
		name:             "GitLab",
		version:          "2.0",
		scope:            "read_user",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://gitlab.com/oauth/token",
		authorizationURL: "https://gitlab.com/oauth/authorize?response_type=code",
		profileURL:       "https://gitlab.com/api/v4/user",
		profile:          mapProfile("id", "name", "email", "avatar_url"),
	},
	"google": {
		name:             "Google",
		version:          "2.0",
		scope:            "openid email profile",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://accounts.google.com/o/oauth2/token",
		authorizationURL: "https://accounts.google.com/o/oauth2/auth?response_type=code",
		profileURL:       "https://www.googleapis.com/oauth2/v1/userinfo?alt=json",
		profile:          mapProfile("id", "name", "email", "picture"),
	},
	"identity-server4": {
		name:             "IdentityServer4",
		version:          "2.0",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://{domain}/connect/token",
		authorizationURL: "https://{domain}/connect/authorize?response_type=code",
		profileURL:       "https://{domain}/connect/userinfo",
		profile:          mapProfile("sub", "name", "email", "picture"),
	},
	"instagram": {
		name:             "Instagram",
		version:          "2.0",
		scope:            "user_profile",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://api.instagram.com/oauth/access_token",
		authorizationURL: "https://api.instagram.com/oauth/authorize?response_type=code",
		profileURL:       "https://graph.instagram.com/me?fields=id,username",
		profile:          mapProfile("id", "username", "", ""),
	},
	"line": {
		name:             "LINE",
		version:          "2.0",
		scope:            "profile openid",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://api.line.me/oauth2/v2.1/token",
		authorizationURL: "https://access.line.me/oauth2/v2.1/authorize?response_type=code",
		profileURL:       "https://api.line.me/v2/profile",
		profile:          mapProfile("userId", "displayName", "", "pictureUrl"),
	},
	"linkedin": {
		name:             "LinkedIn",
		version:          "2.0",
		scope:            "r_liteprofile r_emailaddress",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://www.linkedin.com/oauth/v2/accessToken",
		authorizationURL: "https://www.linkedin.com/oauth/v2/authorization?response_type=code",
		profileURL:       "https://api.linkedin.com/v2/me",
		profile:          mapProfile("id", "localizedFirstName", "", ""),
	},
	"netlify": {
		name:             "Netlify",
		version:          "2.0",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://api.netlify.com/oauth/token",
		authorizationURL: "https://app.netlify.com/authorize?response_type=code",
		profileURL:       "https://api.netlify.com/api/v1/user",
		profile:          mapProfile("id", "full_name", "email", "avatar_url"),
	},
	"okta": {
		name:             "Okta",
		version:          "2.0",
		scope:            "openid profile email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://{domain}/oauth2/v1/token",
		authorizationURL: "https://{domain}/oauth2/v1/authorize?response_type=code",
		profileURL:       "https://{domain}/oauth2/v1/userinfo",
		profile:          mapProfile("sub", "name", "email", "picture"),
	},
	"reddit": {
		name:             "Reddit",
		version:          "2.0",
		scope:            "identity",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://www.reddit.com/api/v1/access_token",
		authorizationURL: "https://www.reddit.com/api/v1/authorize?response_type=code",
		profileURL:       "https://oauth.reddit.com/api/v1/me",
		profile:          mapProfile("id", "name", "", "icon_img"),
	},
	"slack": {
		name:             "Slack",
		version:          "2.0",
		scope:            "identity.basic identity.email identity.avatar",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://slack.com/api/oauth.access",
		authorizationURL: "https://slack.com/oauth/authorize?response_type=code",
		profileURL:       "https://slack.com/api/users.identity",
		profile:          mapProfile("id", "name", "email", ""),
	},
	"spotify": {
		name:             "Spotify",
		version:          "2.0",
		scope:            "user-read-email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://accounts.spotify.com/api/token",
		authorizationURL: "https://accounts.spotify.com/authorize?response_type=code",
		profileURL:       "https://api.spotify.com/v1/me",
		profile:          mapProfile("id", "display_name", "email", ""),
	},
	"twitch": {
		name:             "Twitch",
		version:          "2.0",
		scope:            "openid user:read:email",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://id.twitch.tv/oauth2/token",
		authorizationURL: "https://id.twitch.tv/oauth2/authorize?response_type=code",
		profileURL:       "https://id.twitch.tv/oauth2/userinfo",
		profile:          mapProfile("sub", "preferred_username", "email", "picture"),
	},
	"twitter": {
		name:             "Twitter",
		version:          "1.0A",
		params:           map[string]string{"grant_type": "authorization_code"},
		accessTokenURL:   "https://api.twitter.com/oauth/access_token",
		requestTokenURL:  "https://api.twitter.com/oauth/request_token",
		authorizationURL: "https://api.twitter.com/oauth/authenticate",
		profileURL:       "https://api.twitter.com/1.1/account/verify_credentials.json?include_email=true",
		profile:          mapProfile("id_str", "name", "email", "profile_image_url_https"),
	},
}

// lookupDefaults returns the default table row for a catalog provider. Every
// factory passes its own literal key, so a miss is a bug in this package.
func lookupDefaults(id string) oauthDefaults {
	d, ok := defaultConfigs[id]
	if !ok {
		panic(fmt.Sprintf("providers: no defaults registered for %q", id))
	}
	return d
}

// mapProfile builds a profile mapper that reads flat keys off the raw remote
// profile. The id key is mandatory; empty key names are skipped.
func mapProfile(idKey, nameKey, emailKey, imageKey string) ProfileFunc {
	return func(profile map[string]interface{}, _ Tokens) (User, error) {
		id := stringField(profile, idKey)
		if id == "" {
			return User{}, fmt.Errorf("profile is missing required field %q", idKey)
		}
		return User{
			ID:    id,
			Name:  stringField(profile, nameKey),
			Email: stringField(profile, emailKey),
			Image: stringField(profile, imageKey),
		}, nil
	}
}

// stringField reads a profile value as a string. Numeric ids (GitHub, GitLab)
// arrive as JSON numbers and are formatted without an exponent.
func stringField(profile map[string]interface{}, key string) string {
	if key == "" {
		return ""
	}
	switch v := profile[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
