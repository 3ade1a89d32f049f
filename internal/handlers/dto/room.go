package dto

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required,max=30"`
	Description string `json:"description"`
}
