package vip

type PurchaseRequest struct {
	OptionID string `json:"option_id"` // ID позиции VIP магазина
}

type ActivateRequest struct {
	StashItemID string `json:"stash_item_id"` // ID предмета в запасе
}

type OptionResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BaseType      string   `json:"base_type"`
	PricePremium  int      `json:"price_premium"`
	DurationDays  int      `json:"duration_days"` // 0 = навсегда
	Perks         []string `json:"perks,omitempty"`
	WinMultiplier float64  `json:"win_multiplier,omitempty"`
	LadderAccess  bool     `json:"ladder_access,omitempty"`
	CaseViewOdds  bool     `json:"case_view_odds,omitempty"`
	CaseLuckBoost float64  `json:"case_luck_boost,omitempty"`
}
