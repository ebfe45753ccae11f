package models

import "time"

// SubscriptionTier is a named subscription level gating feature access.
type SubscriptionTier string

const (
	TierFree         SubscriptionTier = "free"
	TierBasic        SubscriptionTier = "basic"
	TierPremium      SubscriptionTier = "premium"
	TierProfessional SubscriptionTier = "professional"
)

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderEmail     AuthProvider = "email"
	ProviderGoogle    AuthProvider = "google"
	ProviderFacebook  AuthProvider = "facebook"
	ProviderInstagram AuthProvider = "instagram"
)

// User is the backend-owned account record. The client holds a read-mostly
// cached copy tied to the session lifetime.
type User struct {
	ID                 int64            `json:"id"`
	Email              string           `json:"email"`
	Username           string           `json:"username"`
	IsActive           bool             `json:"is_active"`
	IsVerified         bool             `json:"is_verified"`
	AuthProvider       AuthProvider     `json:"auth_provider"`
	SubscriptionTier   SubscriptionTier `json:"subscription_tier"`
	SubscriptionExpiry *time.Time       `json:"subscription_expiry,omitempty"`
	BirthDate          string           `json:"birth_date,omitempty"`
	BirthTime          string           `json:"birth_time,omitempty"`
	BirthLocation      string           `json:"birth_location,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          *time.Time       `json:"updated_at,omitempty"`
}

// Message is a single chat message. Append-only within a chat from the
// client's point of view.
type Message struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

// Chat is a conversation with its ordered message history.
type Chat struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	UserID    int64      `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Messages  []Message  `json:"messages"`
}

// SubscriptionPlan is immutable reference data fetched from the backend.
type SubscriptionPlan struct {
	Tier     SubscriptionTier `json:"tier"`
	Name     string           `json:"name"`
	Price    float64          `json:"price"`
	Duration int              `json:"duration"` // months
	Features []string         `json:"features"`
}
