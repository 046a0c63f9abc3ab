package model

import "time"

// Account represents a platform authentication identity. An Account
// may optionally be linked to an Employee roster record (its back
// reference lives on Employee.AccountID, not here, mirroring the
// teacher's one-directional foreign-key style).
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount creates a new Account
func NewAccount(email, passwordHash, role string) *Account {
	now := time.Now().UTC()
	return &Account{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AccountDTO represents account data transfer object (without sensitive data)
type AccountDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDTO converts Account to AccountDTO
func (a *Account) ToDTO() *AccountDTO {
	return &AccountDTO{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}
