package service

import (
	"fmt"
	"time"

	"github.com/wanderly/wanderly-cli/pkg/api"
	"github.com/wanderly/wanderly-cli/pkg/client"
	"github.com/wanderly/wanderly-cli/pkg/credentials"
	"github.com/wanderly/wanderly-cli/pkg/formatter"
	"github.com/wanderly/wanderly-cli/pkg/logger"
	"github.com/wanderly/wanderly-cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles user login
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds != nil && creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Authenticating...")
	loginResp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	if err := s.saveSession(loginResp); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Logged in as %s", loginResp.User.Username)
	return nil
}

// Register handles account creation
func (s *AuthService) Register() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	fullName, err := prompter.PromptString("Full name (optional): ")
	if err != nil {
		return err
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if confirm != password {
		return fmt.Errorf("passwords do not match")
	}

	client.Init()

	formatter.PrintInfo("Creating account...")
	loginResp, err := api.Register(api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
		FullName: fullName,
	})
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	if err := s.saveSession(loginResp); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Account created. Logged in as %s", loginResp.User.Username)
	return nil
}

// Logout clears the stored session
func (s *AuthService) Logout() error {
	creds := attachSession()
	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	// Best effort; the local session is cleared regardless
	if err := api.Logout(); err != nil {
		logger.Debug("Server-side logout failed", "error", err)
	}

	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()

	formatter.PrintSuccess("Logged out")
	return nil
}

// WhoAmI shows the current session
func (s *AuthService) WhoAmI() error {
	creds := attachSession()
	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	user, err := api.GetCurrentUser()
	if err != nil {
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Username": user.Username,
		"Email":    user.Email,
		"Role":     user.Role,
		"Since":    user.CreatedAt.Format(time.DateOnly),
	})
	return nil
}

func (s *AuthService) saveSession(loginResp *api.LoginResponse) error {
	client.SetAuthToken(loginResp.AccessToken)

	expiresAt := time.Now().Add(time.Duration(loginResp.ExpiresIn) * time.Second)

	return credentials.Save(&credentials.Credentials{
		AccessToken:  loginResp.AccessToken,
		RefreshToken: loginResp.RefreshToken,
		ExpiresAt:    expiresAt,
		UserID:       loginResp.User.ID,
		Username:     loginResp.User.Username,
		Email:        loginResp.User.Email,
		AvatarURL:    loginResp.User.AvatarURL,
		Role:         loginResp.User.Role,
	})
}
