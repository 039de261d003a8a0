package models

import (
	"time"

	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
)

// Campaign represents a company's time-bounded dental-service initiative.
// The registration window is a sub-period of the campaign during which
// employees register; service days may never fall inside it. All four
// dates are calendar dates persisted as UTC instants anchored to the
// canonical timezone.
type Campaign struct {
	ID                           uint       `gorm:"primaryKey;column:campaign_id" json:"campaign_id"`
	CompanyID                    uint       `gorm:"not null;index:idx_campaigns_company_id" json:"company_id"`
	CampaignName                 string     `gorm:"size:255;not null" json:"campaign_name"`
	StartDate                    time.Time  `gorm:"not null;index:idx_campaigns_start_date" json:"start_date"`
	EndDate                      time.Time  `gorm:"not null" json:"end_date"`
	RegistrationProcessStartDate time.Time  `gorm:"not null" json:"registration_process_start_date"`
	RegistrationProcessEndDate   time.Time  `gorm:"not null" json:"registration_process_end_date"`
	CreatedAt                    time.Time  `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt                    *time.Time `json:"updated_at,omitempty"`

	// Relations
	Company     *Company     `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
	ServiceDays []ServiceDay `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"service_days,omitempty"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate is called before creating a new record
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = utils.UTCNow()
	}
	return nil
}

// BeforeUpdate is called before updating a record
func (c *Campaign) BeforeUpdate(tx *gorm.DB) error {
	now := utils.UTCNow()
	c.UpdatedAt = &now
	return nil
}

// ServiceWindow returns the closed [start_date, end_date] interval.
func (c *Campaign) ServiceWindow() DateRange {
	return DateRange{Start: c.StartDate, End: c.EndDate}
}

// RegistrationWindow returns the closed registration interval.
func (c *Campaign) RegistrationWindow() DateRange {
	return DateRange{Start: c.RegistrationProcessStartDate, End: c.RegistrationProcessEndDate}
}

// CampaignFilter represents filter criteria for campaign queries
type CampaignFilter struct {
	ID            *uint
	CompanyID     *uint
	CampaignName  *string
	StartsAfter   *time.Time
	StartsBefore  *time.Time
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// CampaignPatch enumerates the mutable fields of a campaign. Only fields
// present are applied; arbitrary keys are never accepted.
type CampaignPatch struct {
	CampaignName                 *string
	StartDate                    *time.Time
	EndDate                      *time.Time
	RegistrationProcessStartDate *time.Time
	RegistrationProcessEndDate   *time.Time
}

// IsEmpty reports whether the patch carries no fields.
func (p CampaignPatch) IsEmpty() bool {
	return p.CampaignName == nil &&
		p.StartDate == nil &&
		p.EndDate == nil &&
		p.RegistrationProcessStartDate == nil &&
		p.RegistrationProcessEndDate == nil
}

// TouchesDates reports whether the patch changes any of the four window
// dates, which requires the overlap validator to run again.
func (p CampaignPatch) TouchesDates() bool {
	return p.StartDate != nil ||
		p.EndDate != nil ||
		p.RegistrationProcessStartDate != nil ||
		p.RegistrationProcessEndDate != nil
}

// ApplyTo overlays the patch onto a copy of the campaign and returns it.
func (p CampaignPatch) ApplyTo(c Campaign) Campaign {
	if p.CampaignName != nil {
		c.CampaignName = *p.CampaignName
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.RegistrationProcessStartDate != nil {
		c.RegistrationProcessStartDate = *p.RegistrationProcessStartDate
	}
	if p.RegistrationProcessEndDate != nil {
		c.RegistrationProcessEndDate = *p.RegistrationProcessEndDate
	}
	return c
}
