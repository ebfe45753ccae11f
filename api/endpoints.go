package api

import (
	"context"
	"fmt"
	"net/url"

	"astroai/models"
)

// Token is the backend session token envelope.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterRequest is the new-account payload. Birth fields are optional
// and feed the astrological profile.
type RegisterRequest struct {
	Email         string `json:"email"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password"`
	BirthDate     string `json:"birth_date,omitempty"`
	BirthTime     string `json:"birth_time,omitempty"`
	BirthLocation string `json:"birth_location,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a session token. The backend expects a
// form-encoded body with username/password fields, where username carries
// the email address.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tok Token
	if err := c.postForm(ctx, "/api/v1/auth/login", form, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Me fetches the profile of the token's owner.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/api/v1/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. The account still needs email
// verification before login succeeds; no token is returned.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.post(ctx, "/api/v1/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SocialLogin exchanges a third-party provider token for a backend session
// token.
func (c *Client) SocialLogin(ctx context.Context, provider models.AuthProvider, accessToken string) (*Token, error) {
	req := struct {
		Provider    models.AuthProvider `json:"provider"`
		AccessToken string              `json:"access_token"`
	}{provider, accessToken}

	var tok Token
	if err := c.post(ctx, "/api/v1/auth/social-login", req, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// VerifyEmail submits the verification token from the registration email.
func (c *Client) VerifyEmail(ctx context.Context, token string) (string, error) {
	var resp messageResponse
	path := "/api/v1/auth/verify-email?token=" + url.QueryEscape(token)
	if err := c.get(ctx, path, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Chats lists the authenticated user's chats, messages included.
func (c *Client) Chats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := c.get(ctx, "/api/v1/chats", &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateChat starts a new chat. A 402 response means the free-tier chat
// quota is exhausted; check with IsQuotaExceeded.
func (c *Client) CreateChat(ctx context.Context, title string) (*models.Chat, error) {
	req := struct {
		Title string `json:"title"`
	}{title}

	var chat models.Chat
	if err := c.post(ctx, "/api/v1/chats", req, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// RenameChat updates a chat title and returns the updated chat.
func (c *Client) RenameChat(ctx context.Context, chatID int64, title string) (*models.Chat, error) {
	req := struct {
		Title string `json:"title"`
	}{title}

	var chat models.Chat
	if err := c.put(ctx, fmt.Sprintf("/api/v1/chats/%d", chatID), req, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// DeleteChat removes a chat and its history.
func (c *Client) DeleteChat(ctx context.Context, chatID int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/chats/%d", chatID))
}

// SendMessage posts a user message and returns the newly created messages:
// the stored user message followed by the AI reply.
func (c *Client) SendMessage(ctx context.Context, chatID int64, content string) ([]models.Message, error) {
	req := struct {
		Content string `json:"content"`
		IsUser  bool   `json:"is_user"`
	}{content, true}

	var msgs []models.Message
	if err := c.post(ctx, fmt.Sprintf("/api/v1/chats/%d/messages", chatID), req, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// Plans fetches the available subscription plans.
func (c *Client) Plans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	if err := c.get(ctx, "/api/v1/subscriptions/plans", &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Subscribe submits a subscription payment and returns the confirmation
// message.
func (c *Client) Subscribe(ctx context.Context, tier models.SubscriptionTier, paymentMethod string, months int) (string, error) {
	req := struct {
		Tier          models.SubscriptionTier `json:"tier"`
		PaymentMethod string                  `json:"payment_method"`
		Duration      int                     `json:"duration"`
	}{tier, paymentMethod, months}

	var resp messageResponse
	if err := c.post(ctx, "/api/v1/subscriptions/subscribe", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
