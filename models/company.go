// Package models contains domain entities and business models for the campaign system
package models

import (
	"time"
)

// Company represents a client company campaigns are run for
type Company struct {
	ID          uint      `gorm:"primaryKey;column:company_id" json:"company_id"`
	CompanyName string    `gorm:"size:255;not null" json:"company_name"`
	CreatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	Campaigns []Campaign `gorm:"foreignKey:CompanyID" json:"campaigns,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyFilter represents filter criteria for company queries
type CompanyFilter struct {
	ID            *uint
	CompanyName   *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
