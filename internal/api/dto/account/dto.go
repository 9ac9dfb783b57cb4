package account

import "time"

type DepositRequest struct {
	Currency string `json:"currency"` // regular | premium
	Amount   int    `json:"amount"`   // Положительное целое
}

type StashItemResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	TypeLabel    string    `json:"type_label"`
	DurationDays int       `json:"duration_days"`
	AcquiredAt   time.Time `json:"acquired_at"`
	Source       string    `json:"source"`
}

type ActivationEntryResponse struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	DurationDays   int        `json:"duration_days"`
	ActivatedAt    time.Time  `json:"activated_at"`
	Source         string     `json:"source"`
	PreviousType   string     `json:"previous_type"`
	PreviousExpiry *time.Time `json:"previous_expiry,omitempty"`
}

type ProfileResponse struct {
	ID             int        `json:"id"`
	Username       string     `json:"username"`
	RegularBalance int        `json:"regular_balance"`
	PremiumBalance int        `json:"premium_balance"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	VIPExpiry      *time.Time `json:"vip_expiry,omitempty"` // nil = навсегда
	OpenedCases    int        `json:"opened_cases"`

	IsBanned   bool       `json:"is_banned"`
	BanReason  string     `json:"ban_reason,omitempty"`
	BanExpiry  *time.Time `json:"ban_expiry,omitempty"`
	IsMuted    bool       `json:"is_muted"`
	MuteExpiry *time.Time `json:"mute_expiry,omitempty"`

	VipStash             []StashItemResponse       `json:"vip_stash"`
	VipActivationHistory []ActivationEntryResponse `json:"vip_activation_history"`

	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
