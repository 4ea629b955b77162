package user

import "time"

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
	JobTitle string `json:"job_title"`
	HireDate string `json:"hire_date"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=USER MANAGER ADMIN"`
}

type UserResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	Active   bool    `json:"active"`
	JobTitle string  `json:"job_title,omitempty"`
	HireDate *string `json:"hire_date,omitempty"`
	CreatedAt string `json:"created_at"`
}

// MapToResponse is shared with the auth module, which returns the
// registered user alongside its token pair.
func MapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		JobTitle:  u.JobTitle,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.HireDate != nil {
		v := u.HireDate.Format("2006-01-02")
		resp.HireDate = &v
	}
	return resp
}

func mapToResponse(u User) UserResponse {
	return MapToResponse(u)
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
