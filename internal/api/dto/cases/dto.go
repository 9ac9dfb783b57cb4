package cases

type OpenRequest struct {
	CaseID string `json:"case_id"` // ID кейса из каталога
}

type OpenResponse struct {
	CaseID         string `json:"case_id"`
	CaseName       string `json:"case_name"`
	ItemID         string `json:"item_id"`         // Выпавший предмет
	Prize          string `json:"prize"`           // Текст выигрыша
	RegularBalance int    `json:"regular_balance"` // Баланс после
	PremiumBalance int    `json:"premium_balance"` // Баланс после
	OpenedCases    int    `json:"opened_cases"`    // Всего открыто кейсов
}

type CaseItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Kind        string  `json:"kind"`
	Value       int     `json:"value,omitempty"`
	VIPType     string  `json:"vip_type,omitempty"`
	Probability float64 `json:"probability"`
	Rarity      string  `json:"rarity"`
}

type CaseResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Price       int                `json:"price"`
	Currency    string             `json:"currency"`
	Description string             `json:"description,omitempty"`
	Items       []CaseItemResponse `json:"items"`
}
