// Package session owns the answer to "who is the current user and may they
// call protected endpoints". It is the single source of truth for the
// token, the cached profile, and the loading/error flags the view layer
// renders from. The store is created once at startup and handed to every
// screen; nothing else talks to durable storage.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"astroai/api"
	"astroai/logger"
	"astroai/models"
)

const (
	msgSessionExpired = "Your session has expired. Please log in again."
	msgLoginFailed    = "Failed to login. Please try again."
	msgRegisterFailed = "Failed to register. Please try again."
)

// Credentials is the login payload. Validation failures never reach the
// network.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterParams is the new-account payload. Birth fields are optional.
type RegisterParams struct {
	Email         string `validate:"required,email"`
	Username      string `validate:"omitempty,min=3,max=32"`
	Password      string `validate:"required,min=8"`
	BirthDate     string `validate:"omitempty,datetime=2006-01-02"`
	BirthTime     string `validate:"omitempty,datetime=15:04"`
	BirthLocation string `validate:"omitempty,max=128"`
}

// Store holds the current session. Safe for use from UI goroutines.
type Store struct {
	client   *api.Client
	keys     Keystore
	validate *validator.Validate
	log      zerolog.Logger

	mu            sync.RWMutex
	user          *models.User
	authenticated bool
	loading       bool
	lastError     string
}

// NewStore builds a session store over the given API client and keystore.
// The store starts in the Anonymous state with loading set, mirroring an
// application that has not yet checked durable storage.
func NewStore(client *api.Client, keys Keystore) *Store {
	return &Store{
		client:   client,
		keys:     keys,
		validate: validator.New(),
		log:      logger.Get().With().Str("component", "session").Logger(),
		loading:  true,
	}
}

// User returns the cached profile, nil when anonymous.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a token is attached and the profile
// fetch succeeded.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Loading reports whether a session operation is in flight. Views must
// treat this as "disable submit controls", not as a separate state.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the latest user-facing error message, empty if none.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// ClearError dismisses the current error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
}

// LoadFromStorage rehydrates the session from the persisted token, if any.
// A rejected or clearly expired token is removed from storage. Always
// terminates with loading cleared, whatever the outcome. Issues no network
// call when no token is stored.
func (s *Store) LoadFromStorage(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	token, err := s.keys.Get(ctx, tokenKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn().Err(err).Msg("keystore read failed")
		}
		return
	}

	if tokenExpired(token, time.Now()) {
		_ = s.keys.Delete(ctx, tokenKey)
		s.setError(msgSessionExpired)
		return
	}

	s.client.SetToken(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		s.log.Info().Err(err).Msg("stored token rejected")
		_ = s.keys.Delete(ctx, tokenKey)
		s.client.ClearToken()
		s.setError(msgSessionExpired)
		return
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
}

// Login submits credentials, persists the returned token and fetches the
// profile. On failure it records a user-facing message and returns the
// error so callers can stay on the form. Concurrent calls are not
// deduplicated; the last writer wins.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if err := s.validate.Struct(Credentials{Email: email, Password: password}); err != nil {
		s.setError(validationMessage(err))
		return err
	}

	s.setLoading(true)
	s.ClearError()
	defer s.setLoading(false)

	tok, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setError(api.Message(err, msgLoginFailed))
		return err
	}

	return s.adoptToken(ctx, tok.AccessToken)
}

// Register creates a new account. It deliberately leaves the session
// untouched: the account needs email verification before login succeeds.
func (s *Store) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if err := s.validate.Struct(params); err != nil {
		s.setError(validationMessage(err))
		return nil, err
	}

	s.setLoading(true)
	s.ClearError()
	defer s.setLoading(false)

	user, err := s.client.Register(ctx, api.RegisterRequest{
		Email:         params.Email,
		Username:      params.Username,
		Password:      params.Password,
		BirthDate:     params.BirthDate,
		BirthTime:     params.BirthTime,
		BirthLocation: params.BirthLocation,
	})
	if err != nil {
		s.setError(api.Message(err, msgRegisterFailed))
		return nil, err
	}
	return user, nil
}

// SocialLogin exchanges a provider token for a backend session token.
// Post-conditions match Login.
func (s *Store) SocialLogin(ctx context.Context, provider models.AuthProvider, accessToken string) error {
	s.setLoading(true)
	s.ClearError()
	defer s.setLoading(false)

	tok, err := s.client.SocialLogin(ctx, provider, accessToken)
	if err != nil {
		s.setError(api.Message(err, msgLoginFailed))
		return err
	}

	return s.adoptToken(ctx, tok.AccessToken)
}

// Refresh re-fetches the profile, e.g. after a subscription change. A
// no-op when anonymous.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.IsAuthenticated() {
		return nil
	}
	user, err := s.client.Me(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Logout clears the persisted token, the client's default headers and the
// cached profile. It never fails; a keystore error is logged and ignored.
func (s *Store) Logout(ctx context.Context) {
	if err := s.keys.Delete(ctx, tokenKey); err != nil {
		s.log.Warn().Err(err).Msg("keystore delete failed")
	}
	s.client.ClearToken()

	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.lastError = ""
	s.mu.Unlock()
}

// adoptToken persists the token, attaches it and fetches the profile.
func (s *Store) adoptToken(ctx context.Context, token string) error {
	if err := s.keys.Set(ctx, tokenKey, token); err != nil {
		s.log.Warn().Err(err).Msg("keystore write failed")
	}
	s.client.SetToken(token)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.setError(api.Message(err, msgLoginFailed))
		return err
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

// tokenExpired peeks at the exp claim of a stored JWT without verifying
// the signature. Tokens that do not parse as JWTs are treated as opaque
// and left for the backend to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// validationMessage turns the first field error into a user-facing string.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Please check the form and try again."
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		if fe.Field() == "Password" {
			return "Password must be at least 8 characters."
		}
		return fe.Field() + " is too short."
	case "datetime":
		return fe.Field() + " has an invalid format."
	default:
		return fe.Field() + " is invalid."
	}
}
