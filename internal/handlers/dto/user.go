package dto

type UpdateProfileRequest struct {
	Username  string `json:"username" binding:"omitempty,min=3,max=20"`
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
}
