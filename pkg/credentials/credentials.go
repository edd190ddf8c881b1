package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/wanderly/wanderly-cli/pkg/config"
)

// Credentials is the stored session: tokens plus enough identity for the
// client to render ownership without a round trip.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Role         string    `json:"role,omitempty"` // user, staff, admin
}

// Load reads credentials from disk. A missing file means nobody is logged
// in and returns nil, nil.
func Load() (*Credentials, error) {
	data, err := os.ReadFile(config.GetCredentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Save writes credentials to disk, owner read/write only. The write goes
// through a temp file so a crash never leaves a half-written session.
func Save(creds *Credentials) error {
	path := config.GetCredentialsPath()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path), ".credentials.tmp")
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the stored credentials. Deleting while logged out is not
// an error.
func Delete() error {
	err := os.Remove(config.GetCredentialsPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsExpired checks if the access token is expired
func (c *Credentials) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// IsValid checks if credentials are usable as-is
func (c *Credentials) IsValid() bool {
	return c.AccessToken != "" && !c.IsExpired()
}

// IsStaff reports whether the logged-in user has staff or admin privileges
func (c *Credentials) IsStaff() bool {
	return c.Role == "staff" || c.Role == "admin"
}
