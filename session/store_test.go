package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"astroai/api"
	"astroai/models"
)

// fakeBackend is an httptest server speaking just enough of the AstroAI
// REST surface for session tests.
type fakeBackend struct {
	srv       *httptest.Server
	requests  atomic.Int64
	acceptTok string
	user      models.User
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		acceptTok: "valid-token",
		user:      models.User{ID: 1, Email: "a@b.com", Username: "stargazer", IsVerified: true},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "a@b.com" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(api.Token{AccessToken: b.acceptTok, TokenType: "bearer"})
	})
	mux.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+b.acceptTok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(b.user)
	})
	mux.HandleFunc("/api/v1/auth/register", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		var req api.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(models.User{ID: 2, Email: req.Email, Username: req.Username})
	})
	mux.HandleFunc("/api/v1/auth/social-login", func(w http.ResponseWriter, r *http.Request) {
		b.requests.Add(1)
		json.NewEncoder(w).Encode(api.Token{AccessToken: b.acceptTok, TokenType: "bearer"})
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func newTestStore(t *testing.T, b *fakeBackend) (*Store, *SQLiteKeystore) {
	t.Helper()
	keys, err := OpenKeystore(t.TempDir() + "/session.db")
	require.NoError(t, err)
	t.Cleanup(func() { keys.Close() })

	return NewStore(api.NewClient(b.srv.URL), keys), keys
}

func TestLoadFromStorage_NoToken(t *testing.T) {
	b := newFakeBackend(t)
	store, _ := newTestStore(t, b)

	store.LoadFromStorage(context.Background())

	require.False(t, store.IsAuthenticated())
	require.False(t, store.Loading())
	require.Nil(t, store.User())
	require.Zero(t, b.requests.Load(), "no network call may be issued without a token")
}

func TestLoadFromStorage_AcceptedToken(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	require.NoError(t, keys.Set(ctx, tokenKey, "valid-token"))

	store.LoadFromStorage(ctx)

	require.True(t, store.IsAuthenticated())
	require.False(t, store.Loading())
	require.NotNil(t, store.User())
	require.Equal(t, "a@b.com", store.User().Email)
}

func TestLoadFromStorage_RejectedToken(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	require.NoError(t, keys.Set(ctx, tokenKey, "stale-token"))

	store.LoadFromStorage(ctx)

	require.False(t, store.IsAuthenticated())
	require.False(t, store.Loading())
	require.NotEmpty(t, store.LastError())

	_, err := keys.Get(ctx, tokenKey)
	require.ErrorIs(t, err, ErrNotFound, "rejected token must be cleared from storage")
}

func TestLoadFromStorage_ExpiredJWTSkipsNetwork(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("whatever"))
	require.NoError(t, err)
	require.NoError(t, keys.Set(ctx, tokenKey, signed))

	store.LoadFromStorage(ctx)

	require.False(t, store.IsAuthenticated())
	require.Zero(t, b.requests.Load(), "clearly expired token needs no round trip")

	_, err = keys.Get(ctx, tokenKey)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLogin_Success(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "a@b.com", "secret"))

	require.True(t, store.IsAuthenticated())
	require.False(t, store.Loading())
	require.Equal(t, "stargazer", store.User().Username)

	stored, err := keys.Get(ctx, tokenKey)
	require.NoError(t, err)
	require.Equal(t, "valid-token", stored)
}

func TestLogin_BadCredentials(t *testing.T) {
	b := newFakeBackend(t)
	store, _ := newTestStore(t, b)

	err := store.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	require.False(t, store.IsAuthenticated())
	require.False(t, store.Loading())
	require.Equal(t, "Incorrect email or password", store.LastError())
}

func TestLogin_ValidationNeverReachesBackend(t *testing.T) {
	b := newFakeBackend(t)
	store, _ := newTestStore(t, b)

	err := store.Login(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	require.Zero(t, b.requests.Load())
	require.Equal(t, "Please enter a valid email address.", store.LastError())
}

func TestLoginThenLogout_ReturnsToAnonymous(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	require.NoError(t, store.Login(ctx, "a@b.com", "secret"))
	require.True(t, store.IsAuthenticated())

	store.Logout(ctx)

	require.False(t, store.IsAuthenticated())
	require.Nil(t, store.User())
	require.Empty(t, store.LastError())

	_, err := keys.Get(ctx, tokenKey)
	require.ErrorIs(t, err, ErrNotFound, "token must be gone from durable storage")

	// A reload from storage stays anonymous.
	store.LoadFromStorage(ctx)
	require.False(t, store.IsAuthenticated())
}

func TestRegister_NoTokenSideEffect(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	user, err := store.Register(ctx, RegisterParams{
		Email:     "new@b.com",
		Username:  "newbie",
		Password:  "longenough",
		BirthDate: "1990-04-12",
	})
	require.NoError(t, err)
	require.Equal(t, "new@b.com", user.Email)

	require.False(t, store.IsAuthenticated())
	_, err = keys.Get(ctx, tokenKey)
	require.ErrorIs(t, err, ErrNotFound, "register must not persist any token")
}

func TestRegister_ValidatesPasswordLength(t *testing.T) {
	b := newFakeBackend(t)
	store, _ := newTestStore(t, b)

	_, err := store.Register(context.Background(), RegisterParams{
		Email:    "new@b.com",
		Password: "short",
	})
	require.Error(t, err)
	require.Zero(t, b.requests.Load())
	require.Equal(t, "Password must be at least 8 characters.", store.LastError())
}

func TestSocialLogin_SamePostConditionsAsLogin(t *testing.T) {
	b := newFakeBackend(t)
	store, keys := newTestStore(t, b)
	ctx := context.Background()

	require.NoError(t, store.SocialLogin(ctx, models.ProviderGoogle, "provider-token"))

	require.True(t, store.IsAuthenticated())
	require.NotNil(t, store.User())

	stored, err := keys.Get(ctx, tokenKey)
	require.NoError(t, err)
	require.Equal(t, "valid-token", stored)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	require.False(t, tokenExpired("opaque-session-token", now))

	fresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := fresh.SignedString([]byte("k"))
	require.NoError(t, err)
	require.False(t, tokenExpired(signed, now))

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1})
	signed, err = noExp.SignedString([]byte("k"))
	require.NoError(t, err)
	require.False(t, tokenExpired(signed, now))
}
