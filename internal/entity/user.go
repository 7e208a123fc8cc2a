package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName,omitempty"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserJwtInfo struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     UserRole  `json:"role"`
}

type UserJwtClaims struct {
	User UserJwtInfo
	jwt.RegisteredClaims
}

type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type AttemptType string

const (
	AttemptTypeLogin    AttemptType = "login"
	AttemptTypeRegister AttemptType = "register"
)

type Attempt struct {
	ID        uuid.UUID
	Type      AttemptType
	Email     string
	IPAddress string
	Success   bool
	CreatedAt time.Time
}
