package env

import (
	"fmt"
	"os"

	"fortuna_backend/internal/config"
	"fortuna_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// Сырые структуры для разбора config.yaml. Валидация содержимого
// выполняется один раз при создании каталога в catalog_repo
type rawCatalog struct {
	Catalog struct {
		VIPOptions []rawVIPOption `yaml:"vip_options"`
		Cases      []rawCase      `yaml:"cases"`
	} `yaml:"catalog"`
}

type rawVIPOption struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type"`
	PricePremium  int      `yaml:"price_premium"`
	DurationDays  int      `yaml:"duration_days"`
	Perks         []string `yaml:"perks"`
	WinMultiplier float64  `yaml:"win_multiplier"`
	LadderAccess  bool     `yaml:"ladder_access"`
	CaseViewOdds  bool     `yaml:"case_view_odds"`
	CaseLuckBoost float64  `yaml:"case_luck_boost"`
}

type rawCase struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Price       int           `yaml:"price"`
	Currency    string        `yaml:"currency"`
	Description string        `yaml:"description"`
	Items       []rawCaseItem `yaml:"items"`
}

type rawCaseItem struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Kind         string  `yaml:"kind"`
	Value        int     `yaml:"value"`
	VIPType      string  `yaml:"vip_type"`
	DurationDays int     `yaml:"duration_days"`
	Probability  float64 `yaml:"probability"`
	Rarity       string  `yaml:"rarity"`
}

type catalogConfig struct {
	cases      []model.Case
	vipOptions []model.VIPOption
}

// NewCatalogConfigFromYAML читает каталог кейсов и VIP опций из yaml файла
func NewCatalogConfigFromYAML(path string) (config.CatalogConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	return ParseCatalogConfig(data)
}

// ParseCatalogConfig разбирает yaml каталог из байтов
func ParseCatalogConfig(data []byte) (config.CatalogConfig, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	cfg := &catalogConfig{}

	for _, ro := range raw.Catalog.VIPOptions {
		cfg.vipOptions = append(cfg.vipOptions, model.VIPOption{
			ID:            ro.ID,
			Name:          ro.Name,
			BaseType:      model.VIPStatus(ro.Type),
			PricePremium:  ro.PricePremium,
			DurationDays:  ro.DurationDays,
			Perks:         ro.Perks,
			WinMultiplier: ro.WinMultiplier,
			LadderAccess:  ro.LadderAccess,
			CaseViewOdds:  ro.CaseViewOdds,
			CaseLuckBoost: ro.CaseLuckBoost,
		})
	}

	for _, rc := range raw.Catalog.Cases {
		gameCase := model.Case{
			ID:          rc.ID,
			Name:        rc.Name,
			Price:       rc.Price,
			Currency:    model.CurrencyType(rc.Currency),
			Description: rc.Description,
		}
		for _, ri := range rc.Items {
			gameCase.Items = append(gameCase.Items, model.CaseItem{
				ID:              ri.ID,
				Name:            ri.Name,
				Kind:            model.CaseItemKind(ri.Kind),
				Value:           ri.Value,
				VIPType:         model.VIPStatus(ri.VIPType),
				VIPDurationDays: ri.DurationDays,
				Probability:     ri.Probability,
				Rarity:          model.Rarity(ri.Rarity),
			})
		}
		cfg.cases = append(cfg.cases, gameCase)
	}

	return cfg, nil
}

func (cfg *catalogConfig) Cases() []model.Case {
	return cfg.cases
}

func (cfg *catalogConfig) VIPOptions() []model.VIPOption {
	return cfg.vipOptions
}
