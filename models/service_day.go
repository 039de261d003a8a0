package models

import (
	"time"

	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
)

// ServiceDay is one calendar date within a campaign's service window on
// which on-site dental services are offered. The (campaign_id, date) pair
// is unique; duplicate insertion attempts are skipped, not rejected.
type ServiceDay struct {
	ID         uint      `gorm:"primaryKey;column:service_day_id" json:"service_day_id"`
	CampaignID uint      `gorm:"not null;uniqueIndex:uk_service_days_campaign_date;index:idx_service_days_campaign_id" json:"campaign_id"`
	Date       time.Time `gorm:"not null;uniqueIndex:uk_service_days_campaign_date" json:"date"`
	CreatedAt  time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt  time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	Campaign *Campaign `gorm:"foreignKey:CampaignID;references:ID" json:"campaign,omitempty"`
}

func (ServiceDay) TableName() string {
	return "service_days"
}

// BeforeUpdate is called before updating a record
func (s *ServiceDay) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = utils.UTCNow()
	return nil
}

// ServiceDayFilter represents filter criteria for service day queries
type ServiceDayFilter struct {
	ID         *uint
	CampaignID *uint
	DateAfter  *time.Time
	DateBefore *time.Time
}
