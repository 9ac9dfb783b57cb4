package converter

import (
	"fortuna_backend/internal/api/dto/cases"
	"fortuna_backend/internal/model"
)

func ToOpenResponse(result model.CaseOpenResult) cases.OpenResponse {
	return cases.OpenResponse{
		CaseID:         result.CaseID,
		CaseName:       result.CaseName,
		ItemID:         result.Item.ID,
		Prize:          result.Prize,
		RegularBalance: result.RegularBalance,
		PremiumBalance: result.PremiumBalance,
		OpenedCases:    result.OpenedCases,
	}
}

func ToCaseResponses(list []model.Case) []cases.CaseResponse {
	result := make([]cases.CaseResponse, len(list))
	for i, gameCase := range list {
		result[i] = cases.CaseResponse{
			ID:          gameCase.ID,
			Name:        gameCase.Name,
			Price:       gameCase.Price,
			Currency:    string(gameCase.Currency),
			Description: gameCase.Description,
			Items:       toCaseItems(gameCase.Items),
		}
	}
	return result
}

func toCaseItems(items []model.CaseItem) []cases.CaseItemResponse {
	result := make([]cases.CaseItemResponse, len(items))
	for i, item := range items {
		result[i] = cases.CaseItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Kind:        string(item.Kind),
			Value:       item.Value,
			VIPType:     string(item.VIPType),
			Probability: item.Probability,
			Rarity:      string(item.Rarity),
		}
	}
	return result
}
