package balance

import "github.com/google/uuid"

type AdjustTotalRequest struct {
	TotalDays int `json:"total_days" binding:"required,min=0,max=366"`
}

type BalanceResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Year          int       `json:"year"`
	TotalDays     int       `json:"total_days"`
	UsedDays      int       `json:"used_days"`
	AvailableDays int       `json:"available_days"`
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	return BalanceResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		AvailableDays: b.AvailableDays(),
	}
}

func mapToListResponse(balances []LeaveBalance) []BalanceResponse {
	resp := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp = append(resp, mapToResponse(b))
	}
	return resp
}
