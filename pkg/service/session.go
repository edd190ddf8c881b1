package service

import (
	"time"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/credentials"
	"github.com/wanderly/wanderly-cli/pkg/forum"
	"github.com/wanderly/wanderly-cli/pkg/logger"
)

// attachSession loads stored credentials and, when valid, attaches the
// bearer token to the HTTP client. An expired access token is refreshed
// in place when a refresh token is available. Returns the credentials or
// nil when nobody is logged in.
func attachSession() *credentials.Credentials {
	creds, err := credentials.Load()
	if err != nil {
		logger.Warn("Failed to load credentials", "error", err)
		return nil
	}
	if creds == nil {
		return nil
	}

	if creds.IsExpired() && creds.RefreshToken != "" {
		refreshed, err := api.Refresh(creds.RefreshToken)
		if err != nil {
			logger.Debug("Token refresh failed", "error", err)
			return nil
		}
		creds.AccessToken = refreshed.AccessToken
		creds.ExpiresAt = time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second)
		if err := credentials.Save(creds); err != nil {
			logger.Warn("Failed to persist refreshed credentials", "error", err)
		}
	}

	if !creds.IsValid() {
		return nil
	}

	client.SetAuthToken(creds.AccessToken)
	return creds
}

// currentIdentity is the forum core's view of the logged-in user. Identity
// comes from the stored credentials, not the session token alone.
func currentIdentity() forum.IdentityFunc {
	creds := attachSession()
	return func() *forum.Identity {
		if creds == nil {
			return nil
		}
		return &forum.Identity{
			Email:     creds.Email,
			Username:  creds.Username,
			AvatarURL: creds.AvatarURL,
		}
	}
}
