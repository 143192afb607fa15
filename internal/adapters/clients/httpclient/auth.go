package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

// Outbound auth modes.
const (
	AuthNone   = "none"
	AuthOAuth2 = "oauth2"
	AuthGoogle = "google"
)

// AuthConfig selects how requests to collaborators are authenticated.
type AuthConfig struct {
	Mode string

	// oauth2 client-credentials grant
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string

	// Google-signed ID tokens, audience is the collaborator's base URL
	CredentialsFile string
}

// NewHTTPClient builds the *http.Client used for one collaborator.
// audience is only used in google mode.
func NewHTTPClient(ctx context.Context, auth AuthConfig, audience string, timeout time.Duration) (*http.Client, error) {
	switch auth.Mode {
	case "", AuthNone:
		return &http.Client{Timeout: timeout}, nil
	case AuthOAuth2:
		if auth.TokenURL == "" || auth.ClientID == "" {
			return nil, fmt.Errorf("oauth2 client auth requires a token URL and client id")
		}
		cc := clientcredentials.Config{
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			TokenURL:     auth.TokenURL,
			Scopes:       auth.Scopes,
		}
		client := cc.Client(ctx)
		client.Timeout = timeout
		return client, nil
	case AuthGoogle:
		var opts []idtoken.ClientOption
		if auth.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(auth.CredentialsFile))
		}
		client, err := idtoken.NewClient(ctx, audience, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create google id token client for %s: %w", audience, err)
		}
		client.Timeout = timeout
		return client, nil
	default:
		return nil, fmt.Errorf("unknown client auth mode %q", auth.Mode)
	}
}
