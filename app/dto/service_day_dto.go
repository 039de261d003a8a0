package dto

// CreateServiceDaysRequest represents the bulk service-day creation payload.
// Dates already scheduled for the campaign are skipped, not errored.
type CreateServiceDaysRequest struct {
	CampaignID uint     `json:"campaign_id" validate:"required" example:"7"`
	Dates      []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02" example:"2023-12-09,2023-12-10"`
}

// UpdateServiceDayRequest represents the payload for moving a service day
// to a new date. The campaign_id field is accepted for wire compatibility
// but ownership always follows the service day's actual campaign.
type UpdateServiceDayRequest struct {
	CampaignID uint   `json:"campaign_id" validate:"omitempty" example:"7"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02" example:"2023-12-09"`
}

// DeleteServiceDaysRequest represents the bulk service-day deletion payload
type DeleteServiceDaysRequest struct {
	CampaignID    uint   `json:"campaign_id" validate:"required" example:"7"`
	ServiceDayIDs []uint `json:"service_day_ids" validate:"required,min=1,dive,gt=0" example:"3,4,5"`
}

// ServiceDayDTO represents service day data for API responses
type ServiceDayDTO struct {
	ServiceDayID uint   `json:"service_day_id" example:"3"`
	CampaignID   uint   `json:"campaign_id" example:"7"`
	Date         string `json:"date" example:"2023-12-09"`
	CreatedAt    string `json:"created_at" example:"2023-11-02T10:30:00Z"`
	UpdatedAt    string `json:"updated_at" example:"2023-11-02T10:30:00Z"`
}
