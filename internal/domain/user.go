package domain

import "time"

type UserRole string

const (
	UserRoleTenant UserRole = "tenant"
	UserRoleAdmin  UserRole = "admin"
)

type User struct {
	ID                 int32     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Mobile             string    `json:"mobile,omitempty"`
	PasswordHash       string    `json:"-"`
	Role               UserRole  `json:"role"`
	PassportFirstPage  string    `json:"passport_first_page"`
	PassportSecondPage string    `json:"passport_second_page"`
	FavoriteIDs        []int32   `json:"favorites"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
