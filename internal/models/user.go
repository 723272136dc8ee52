package models

import "time"

// Sex is the sex recorded on a user profile.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// User represents a registered account. The password field holds the bcrypt
// digest, never the plaintext, and its json:"-" tag keeps it out of every
// response.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName string    `json:"firstName" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Sex       Sex       `json:"sex" gorm:"type:varchar(10)" validate:"required,oneof=MALE FEMALE"`
	Phone     string    `json:"phone" gorm:"type:varchar(30)" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	BornDate  time.Time `json:"bornDate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
