package admin

type BanRequest struct {
	AccountID int    `json:"account_id"`
	Reason    string `json:"reason"`
	Days      int    `json:"days"` // 0 = навсегда
}

type UnbanRequest struct {
	AccountID int `json:"account_id"`
}

type MuteRequest struct {
	AccountID int    `json:"account_id"`
	Reason    string `json:"reason"`
	Minutes   int    `json:"minutes"` // 0 = навсегда
}

type UnmuteRequest struct {
	AccountID int `json:"account_id"`
}

type GrantRequest struct {
	AccountID    int    `json:"account_id"`
	Type         string `json:"type"` // none | vip | plus | premium
	DurationDays int    `json:"duration_days"`
}
