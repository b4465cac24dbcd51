package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
// Roles: "employee" | "area-admin" | "super-admin". A user may hold several.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Roles        Roles     `gorm:"type:jsonb;not null;default:'[\"employee\"]'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Roles is a JSONB-backed string slice.
type Roles []string

func (r Roles) Value() (driver.Value, error) { return jsonbValue(r) }
func (r *Roles) Scan(src interface{}) error  { return jsonbScan(src, r) }

// Has reports whether the user holds any of the given roles.
func (r Roles) Has(roles ...string) bool {
	for _, want := range roles {
		for _, have := range r {
			if have == want {
				return true
			}
		}
	}
	return false
}
