package model

import (
	"time"

	"github.com/Astemirdum/library-circulation/pkg/auth"
)

type Reader struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         auth.Role `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Profile struct {
	ReaderID    int64  `json:"readerId" db:"reader_id"`
	FullName    string `json:"fullName" db:"full_name" validate:"max=255"`
	Contact     string `json:"contact" db:"contact" validate:"max=64"`
	ReferenceID string `json:"referenceId" db:"reference_id" validate:"max=64"`
	Address     string `json:"address" db:"address"`
}

type ReaderWithProfile struct {
	Reader  `json:",inline"`
	Profile Profile `json:"profile"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80,singleline"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"max=255"`
	Contact  string `json:"contact" validate:"max=64"`
	Address  string `json:"address"`
}

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Token struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
