package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Address is the mailing address attached to a user record
type Address struct {
	City string `bun:"city,notnull" json:"city"`
	Zip  string `bun:"zip,notnull" json:"zip"`
}

// User is the user model. Username and email carry unique constraints, the
// store layer is the authoritative duplicate guard, not the signup pre check.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username"`
	Name          string     `bun:"name,notnull" json:"name"`
	Email         string     `bun:"email,notnull,unique" json:"email"`
	Address       Address    `bun:"embed:addr_" json:"address"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// PublicUser is the caller facing view of a user record. The password hash
// never leaves the store layer.
type PublicUser struct {
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
}

// PublicView will map a record to its response representation
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		Address:  u.Address,
	}
}

// LoginData is the signin success payload
type LoginData struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
