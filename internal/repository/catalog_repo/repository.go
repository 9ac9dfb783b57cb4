package catalog_repo

import (
	"fmt"

	"fortuna_backend/internal/config"
	"fortuna_backend/internal/model"
	"fortuna_backend/internal/repository"
)

// Длительность канонической Premium опции, из которой берется буст удачи
const canonicalPremiumDays = 30

// Репозиторий каталога. Данные неизменяемы после создания,
// поэтому блокировки не нужны
type repo struct {
	cases            map[string]*model.Case
	caseOrder        []model.Case
	options          map[string]*model.VIPOption
	optOrder         []model.VIPOption
	premiumLuckBoost float64
}

// NewCatalogRepository строит каталог из конфигурации и валидирует его.
// Вся проверка полноты данных выполняется здесь один раз,
// дальше по коду каталог считается корректным
func NewCatalogRepository(cfg config.CatalogConfig) (repository.CatalogRepository, error) {
	r := &repo{
		cases:   make(map[string]*model.Case),
		options: make(map[string]*model.VIPOption),
	}

	r.optOrder = append(r.optOrder, cfg.VIPOptions()...)
	premiumFound := false
	for i := range r.optOrder {
		opt := &r.optOrder[i]
		if err := validateVIPOption(*opt); err != nil {
			return nil, fmt.Errorf("vip option %q: %w", opt.ID, err)
		}
		if _, ok := r.options[opt.ID]; ok {
			return nil, fmt.Errorf("duplicate vip option id %q", opt.ID)
		}
		r.options[opt.ID] = opt

		if opt.BaseType == model.VIPPremium && opt.DurationDays == canonicalPremiumDays {
			r.premiumLuckBoost = opt.CaseLuckBoost
			premiumFound = true
		}
	}
	if !premiumFound {
		return nil, fmt.Errorf("canonical %d-day premium option is missing", canonicalPremiumDays)
	}

	r.caseOrder = append(r.caseOrder, cfg.Cases()...)
	for i := range r.caseOrder {
		gameCase := &r.caseOrder[i]
		if err := validateCase(*gameCase); err != nil {
			return nil, fmt.Errorf("case %q: %w", gameCase.ID, err)
		}
		if _, ok := r.cases[gameCase.ID]; ok {
			return nil, fmt.Errorf("duplicate case id %q", gameCase.ID)
		}
		r.cases[gameCase.ID] = gameCase
	}

	return r, nil
}

func validateVIPOption(opt model.VIPOption) error {
	if !opt.BaseType.Active() {
		return fmt.Errorf("base type %q is not an active vip status", opt.BaseType)
	}
	if opt.PricePremium <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if opt.DurationDays < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	if opt.CaseLuckBoost < 0 {
		return fmt.Errorf("luck boost must not be negative")
	}
	return nil
}

func validateCase(gameCase model.Case) error {
	if gameCase.Currency != model.CurrencyRegular && gameCase.Currency != model.CurrencyPremium {
		return fmt.Errorf("unknown currency %q", gameCase.Currency)
	}
	if gameCase.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if len(gameCase.Items) == 0 {
		return fmt.Errorf("case has no items")
	}
	for _, item := range gameCase.Items {
		if err := validateCaseItem(item); err != nil {
			return fmt.Errorf("item %q: %w", item.ID, err)
		}
	}
	return nil
}

func validateCaseItem(item model.CaseItem) error {
	switch item.Kind {
	case model.ItemRegularCurrency, model.ItemPremiumCurrency:
		if item.VIPType != "" && item.VIPType != model.VIPNone {
			return fmt.Errorf("currency item must not carry a vip type")
		}
	case model.ItemVIPGrant:
		// В запас никогда не попадает статус "none"
		if !item.VIPType.Active() {
			return fmt.Errorf("vip item type %q is not an active vip status", item.VIPType)
		}
		if item.VIPDurationDays < 0 {
			return fmt.Errorf("vip duration must not be negative")
		}
	default:
		return fmt.Errorf("unknown item kind %q", item.Kind)
	}

	if item.Probability < 0 {
		return fmt.Errorf("probability must not be negative")
	}

	switch item.Rarity {
	case model.RarityCommon, model.RarityUncommon, model.RarityRare, model.RarityEpic:
	default:
		return fmt.Errorf("unknown rarity %q", item.Rarity)
	}
	return nil
}

func (r *repo) GetCase(id string) (*model.Case, error) {
	gameCase, ok := r.cases[id]
	if !ok {
		return nil, model.ErrCaseNotFound
	}
	return gameCase, nil
}

func (r *repo) GetVIPOption(id string) (*model.VIPOption, error) {
	opt, ok := r.options[id]
	if !ok {
		return nil, model.ErrVIPOptionNotFound
	}
	return opt, nil
}

func (r *repo) Cases() []model.Case {
	return r.caseOrder
}

func (r *repo) VIPOptions() []model.VIPOption {
	return r.optOrder
}

func (r *repo) PremiumLuckBoost() float64 {
	return r.premiumLuckBoost
}
