package absencetype

import "github.com/google/uuid"

type CreateAbsenceTypeRequest struct {
	Name           string `json:"name" binding:"required,min=2,max=100"`
	ColorHex       string `json:"color_hex" binding:"omitempty,hexcolor"`
	DeductsBalance *bool  `json:"deducts_balance"`
	Description    string `json:"description" binding:"omitempty,max=255"`
}

type UpdateAbsenceTypeRequest struct {
	Name           string `json:"name" binding:"omitempty,min=2,max=100"`
	ColorHex       string `json:"color_hex" binding:"omitempty,hexcolor"`
	DeductsBalance *bool  `json:"deducts_balance"`
	Description    string `json:"description" binding:"omitempty,max=255"`
}

type AbsenceTypeResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ColorHex       string    `json:"color_hex"`
	DeductsBalance bool      `json:"deducts_balance"`
	Description    string    `json:"description"`
	Active         bool      `json:"active"`
}

func mapToResponse(t AbsenceType) AbsenceTypeResponse {
	return AbsenceTypeResponse{
		ID:             t.ID,
		Name:           t.Name,
		ColorHex:       t.ColorHex,
		DeductsBalance: t.DeductsBalance,
		Description:    t.Description,
		Active:         t.Active,
	}
}

func mapToListResponse(types []AbsenceType) []AbsenceTypeResponse {
	resp := make([]AbsenceTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, mapToResponse(t))
	}
	return resp
}
