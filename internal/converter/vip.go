package converter

import (
	"fortuna_backend/internal/api/dto/vip"
	"fortuna_backend/internal/model"
)

func ToVIPOptionResponses(options []model.VIPOption) []vip.OptionResponse {
	result := make([]vip.OptionResponse, len(options))
	for i, opt := range options {
		result[i] = vip.OptionResponse{
			ID:            opt.ID,
			Name:          opt.Name,
			BaseType:      string(opt.BaseType),
			PricePremium:  opt.PricePremium,
			DurationDays:  opt.DurationDays,
			Perks:         opt.Perks,
			WinMultiplier: opt.WinMultiplier,
			LadderAccess:  opt.LadderAccess,
			CaseViewOdds:  opt.CaseViewOdds,
			CaseLuckBoost: opt.CaseLuckBoost,
		}
	}
	return result
}
