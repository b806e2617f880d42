package models

// User represents a customer account.
type User struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(100);not null"`
	Address string `json:"address" gorm:"type:varchar(200)"`
	Email   string `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
}

// UserPayload is the request body for creating or replacing a user.
// Updates are full-replace, so every mutable field appears here.
type UserPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"omitempty,max=200"`
	Email   string `json:"email" validate:"required,email,max=100"`
}
