package team

import (
	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	ManagerID   string `json:"manager_id" binding:"required,uuid"`
}

type UpdateTeamRequest struct {
	Name        string `json:"name" binding:"omitempty,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	ManagerID   string `json:"manager_id" binding:"omitempty,uuid"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type TeamResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ManagerID   uuid.UUID `json:"manager_id"`
}

type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	JobTitle string    `json:"job_title"`
}

func mapToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ManagerID:   t.ManagerID,
	}
}

func mapToListResponse(teams []Team) []TeamResponse {
	resp := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, mapToResponse(t))
	}
	return resp
}
