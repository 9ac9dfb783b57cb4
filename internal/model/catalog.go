package model

// Вид награды внутри кейса
type CaseItemKind string

const (
	ItemRegularCurrency CaseItemKind = "regular"
	ItemPremiumCurrency CaseItemKind = "premium"
	ItemVIPGrant        CaseItemKind = "vip"
)

type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// Boosted - буст удачи применяется только к редким и эпическим предметам
func (r Rarity) Boosted() bool {
	return r == RarityRare || r == RarityEpic
}

// CaseItem - возможная награда кейса. Заполнена ровно одна ветка:
// валютная дельта (Value, может быть отрицательной) или VIP грант
type CaseItem struct {
	ID              string
	Name            string
	Kind            CaseItemKind
	Value           int
	VIPType         VIPStatus
	VIPDurationDays int
	Probability     float64 // базовый вес, сумма по кейсу не обязана равняться 1
	Rarity          Rarity
}

// Case - кейс из каталога. Неизменяемые статические данные
type Case struct {
	ID          string
	Name        string
	Price       int
	Currency    CurrencyType
	Description string
	Items       []CaseItem
}

// VIPOption - позиция VIP магазина. Покупается только за донат-валюту
type VIPOption struct {
	ID            string
	Name          string
	BaseType      VIPStatus
	PricePremium  int
	DurationDays  int // 0 = навсегда
	Perks         []string
	WinMultiplier float64
	LadderAccess  bool
	CaseViewOdds  bool
	CaseLuckBoost float64
}

// CaseOpenResult - результат открытия кейса
type CaseOpenResult struct {
	CaseID         string
	CaseName       string
	Item           CaseItem
	Prize          string
	RegularBalance int
	PremiumBalance int
	OpenedCases    int
}
