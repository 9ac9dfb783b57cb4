package model

import "time"

const (
	// Стартовые балансы нового аккаунта
	InitialRegularBalance = 1000
	InitialPremiumBalance = 10

	// Вместимость запаса VIP и истории активаций
	MaxVipStashSize             = 5
	MaxVipActivationHistorySize = 5

	// Максимальное количество записей аудита на аккаунт
	MaxAuditEntries = 1000
)

type CurrencyType string

const (
	CurrencyRegular CurrencyType = "regular"
	CurrencyPremium CurrencyType = "premium"
)

// Label возвращает отображаемое название валюты
func (c CurrencyType) Label() string {
	if c == CurrencyPremium {
		return "Донат-валюта"
	}
	return "Обычная валюта"
}

type VIPStatus string

const (
	VIPNone    VIPStatus = "none"
	VIPBase    VIPStatus = "vip"
	VIPPlus    VIPStatus = "plus"
	VIPPremium VIPStatus = "premium"
)

// Label возвращает отображаемое название статуса
func (s VIPStatus) Label() string {
	switch s {
	case VIPBase:
		return "VIP"
	case VIPPlus:
		return "Plus"
	case VIPPremium:
		return "Premium"
	default:
		return "Нет"
	}
}

// Active - статус считается активным, если это не "none"
func (s VIPStatus) Active() bool {
	return s == VIPBase || s == VIPPlus || s == VIPPremium
}

// Источник появления предмета в запасе
type StashSource string

const (
	StashSourceShop StashSource = "Магазин"
	StashSourceCase StashSource = "Кейс"
)

// Источник активации VIP статуса
type ActivationSource string

const (
	ActivationSourceShopAuto ActivationSource = "Магазин (авто)"
	ActivationSourceCaseAuto ActivationSource = "Кейс (авто)"
	ActivationSourceStash    ActivationSource = "Запас"
	ActivationSourceAdmin    ActivationSource = "Админ"
	ActivationSourcePromo    ActivationSource = "Промокод"
	ActivationSourceApproved ActivationSource = "Запрос одобрен"
)

// VipStashItem - неактивированный VIP в запасе аккаунта.
// Тип всегда один из активных статусов, никогда "none"
type VipStashItem struct {
	ID           string      `json:"id"`
	Type         VIPStatus   `json:"type"`
	DurationDays int         `json:"duration_days"` // 0 = навсегда
	AcquiredAt   time.Time   `json:"acquired_at"`
	Source       StashSource `json:"source"`
}

// VipActivationEntry - запись истории активаций со снимком предыдущего состояния
type VipActivationEntry struct {
	ID             string           `json:"id"`
	Type           VIPStatus        `json:"type"`
	DurationDays   int              `json:"duration_days"`
	ActivatedAt    time.Time        `json:"activated_at"`
	Source         ActivationSource `json:"source"`
	PreviousType   VIPStatus        `json:"previous_type"`
	PreviousExpiry *time.Time       `json:"previous_expiry,omitempty"`
}

type AuditEntry struct {
	ID        string
	AccountID int
	Action    string
	Details   string
	CreatedAt time.Time
}

// Account - аккаунт игрока. Балансы, VIP состояние и состояние модерации.
// Мутируется только через сервисы, внешние слои получают копии
type Account struct {
	ID           int
	Username     string
	PasswordHash string

	RegularBalance int
	PremiumBalance int

	Status    VIPStatus
	VIPExpiry *time.Time // nil = навсегда

	OpenedCases int

	IsBanned   bool
	BanReason  string
	BanExpiry  *time.Time // nil = навсегда
	IsMuted    bool
	MuteReason string
	MuteExpiry *time.Time

	VipStash             []VipStashItem
	VipActivationHistory []VipActivationEntry

	CreatedAt time.Time
	LastLogin time.Time
}

// Balance возвращает баланс в указанной валюте
func (a *Account) Balance(currency CurrencyType) int {
	if currency == CurrencyPremium {
		return a.PremiumBalance
	}
	return a.RegularBalance
}

// AddBalance применяет дельту (может быть отрицательной) к балансу в указанной валюте
func (a *Account) AddBalance(currency CurrencyType, delta int) {
	if currency == CurrencyPremium {
		a.PremiumBalance += delta
		return
	}
	a.RegularBalance += delta
}

// PushVipStash кладет предмет в начало запаса и обрезает хвост по вместимости
func (a *Account) PushVipStash(item VipStashItem) {
	a.VipStash = append([]VipStashItem{item}, a.VipStash...)
	if len(a.VipStash) > MaxVipStashSize {
		a.VipStash = a.VipStash[:MaxVipStashSize]
	}
}

// PushVipActivation добавляет запись в начало истории активаций с обрезкой по вместимости
func (a *Account) PushVipActivation(entry VipActivationEntry) {
	a.VipActivationHistory = append([]VipActivationEntry{entry}, a.VipActivationHistory...)
	if len(a.VipActivationHistory) > MaxVipActivationHistorySize {
		a.VipActivationHistory = a.VipActivationHistory[:MaxVipActivationHistorySize]
	}
}
