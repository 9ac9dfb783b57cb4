package converter

import (
	"fortuna_backend/internal/api/dto/account"
	"fortuna_backend/internal/model"
)

func ToProfileResponse(acc *model.Account) account.ProfileResponse {
	return account.ProfileResponse{
		ID:             acc.ID,
		Username:       acc.Username,
		RegularBalance: acc.RegularBalance,
		PremiumBalance: acc.PremiumBalance,
		Status:         string(acc.Status),
		StatusLabel:    acc.Status.Label(),
		VIPExpiry:      acc.VIPExpiry,
		OpenedCases:    acc.OpenedCases,

		IsBanned:   acc.IsBanned,
		BanReason:  acc.BanReason,
		BanExpiry:  acc.BanExpiry,
		IsMuted:    acc.IsMuted,
		MuteExpiry: acc.MuteExpiry,

		VipStash:             toStashItems(acc.VipStash),
		VipActivationHistory: toActivationEntries(acc.VipActivationHistory),

		CreatedAt: acc.CreatedAt,
		LastLogin: acc.LastLogin,
	}
}

func toStashItems(items []model.VipStashItem) []account.StashItemResponse {
	result := make([]account.StashItemResponse, len(items))
	for i, item := range items {
		result[i] = account.StashItemResponse{
			ID:           item.ID,
			Type:         string(item.Type),
			TypeLabel:    item.Type.Label(),
			DurationDays: item.DurationDays,
			AcquiredAt:   item.AcquiredAt,
			Source:       string(item.Source),
		}
	}
	return result
}

func toActivationEntries(entries []model.VipActivationEntry) []account.ActivationEntryResponse {
	result := make([]account.ActivationEntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = account.ActivationEntryResponse{
			ID:             entry.ID,
			Type:           string(entry.Type),
			DurationDays:   entry.DurationDays,
			ActivatedAt:    entry.ActivatedAt,
			Source:         string(entry.Source),
			PreviousType:   string(entry.PreviousType),
			PreviousExpiry: entry.PreviousExpiry,
		}
	}
	return result
}

func ToAuditEntries(entries []model.AuditEntry) []account.AuditEntryResponse {
	result := make([]account.AuditEntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = account.AuditEntryResponse{
			ID:        entry.ID,
			Action:    entry.Action,
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		}
	}
	return result
}
