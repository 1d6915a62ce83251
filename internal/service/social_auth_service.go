package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chopbox/internal/models"
	"chopbox/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SocialProfile is the identity a provider returns for an access token.
type SocialProfile struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"picture"`
}

// ProfileFetcher resolves a provider access token into a SocialProfile.
type ProfileFetcher interface {
	Fetch(ctx context.Context, provider, accessToken string) (*SocialProfile, error)
}

// providerEndpoints maps the supported providers to their userinfo endpoints.
var providerEndpoints = map[string]string{
	"google":   "https://www.googleapis.com/oauth2/v2/userinfo",
	"facebook": "https://graph.facebook.com/me?fields=id,name,email,picture",
}

// SocialAuthService signs users in through a third-party identity provider:
// verify the access token against the provider, then find-or-create the local
// account and link the provider identity to it.
type SocialAuthService struct {
	userRepo repository.UserRepository
	fetcher  ProfileFetcher
}

// NewSocialAuthService creates a social auth service. A nil fetcher selects
// the default HTTP implementation.
func NewSocialAuthService(userRepo repository.UserRepository, fetcher ProfileFetcher) *SocialAuthService {
	if fetcher == nil {
		fetcher = &httpProfileFetcher{client: &http.Client{Timeout: 10 * time.Second}}
	}
	return &SocialAuthService{userRepo: userRepo, fetcher: fetcher}
}

// Login resolves the provider token and returns the linked local user,
// creating or linking the account as needed.
func (s *SocialAuthService) Login(ctx context.Context, provider, accessToken string) (*models.User, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if _, ok := providerEndpoints[provider]; !ok {
		return nil, models.NewValidationError("Invalid login provider")
	}
	if accessToken == "" {
		return nil, models.NewValidationError("Access token is required")
	}

	profile, err := s.fetcher.Fetch(ctx, provider, accessToken)
	if err != nil {
		return nil, models.NewUnauthorizedError("Could not verify social identity")
	}
	if profile.ID == "" || profile.Email == "" {
		return nil, models.NewUnauthorizedError("Social identity is missing an ID or email")
	}

	// Already linked?
	user, err := s.userRepo.GetByProvider(ctx, provider, profile.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// Existing local account with the same email: link the provider to it.
	user, err = s.userRepo.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		user.Provider = provider
		user.ProviderID = profile.ID
		if user.Avatar == "" && profile.Avatar != "" {
			user.Avatar = profile.Avatar
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	return s.createFromProfile(ctx, provider, profile)
}

func (s *SocialAuthService) createFromProfile(ctx context.Context, provider string, profile *SocialProfile) (*models.User, error) {
	// Social accounts never log in with this password; it only satisfies the
	// not-null constraint with an unguessable value.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	avatar := profile.Avatar
	if avatar == "" {
		avatar = GravatarURL(profile.Email)
	}

	user := &models.User{
		Username:   usernameFromName(profile.Name, profile.Email),
		Email:      profile.Email,
		Password:   string(hash),
		Provider:   provider,
		ProviderID: profile.ID,
		Avatar:     avatar,
	}

	err = s.userRepo.Create(ctx, user)
	if appErr, ok := err.(*models.AppError); ok && appErr.Code == "CONFLICT" {
		// Username collision; retry once with a random suffix.
		user.Username = fmt.Sprintf("%s-%s", user.Username, uuid.New().String()[:6])
		err = s.userRepo.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// usernameFromName derives a username from the provider display name,
// falling back to the email local part.
func usernameFromName(name, email string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", ".")
	if base == "" {
		base, _, _ = strings.Cut(email, "@")
		base = strings.ToLower(base)
	}
	return base
}

// httpProfileFetcher fetches the userinfo document over HTTPS with the
// access token as a bearer credential.
type httpProfileFetcher struct {
	client *http.Client
}

func (f *httpProfileFetcher) Fetch(ctx context.Context, provider, accessToken string) (*SocialProfile, error) {
	endpoint := providerEndpoints[provider]
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider %s rejected the token: status %d", provider, resp.StatusCode)
	}

	var profile SocialProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
