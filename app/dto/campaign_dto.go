package dto

// CreateCampaignRequest represents the request payload for campaign creation.
// All date fields use the YYYY-MM-DD wire format.
type CreateCampaignRequest struct {
	CampaignName                 string `json:"campaign_name" validate:"required,min=3,max=255" example:"Winter checkups"`
	CompanyID                    uint   `json:"company_id" validate:"required" example:"1"`
	StartDate                    string `json:"start_date" validate:"required,datetime=2006-01-02" example:"2023-12-01"`
	EndDate                      string `json:"end_date" validate:"required,datetime=2006-01-02" example:"2023-12-16"`
	RegistrationProcessStartDate string `json:"registration_process_start_date" validate:"required,datetime=2006-01-02" example:"2023-12-01"`
	RegistrationProcessEndDate   string `json:"registration_process_end_date" validate:"required,datetime=2006-01-02" example:"2023-12-08"`
}

// UpdateCampaignRequest represents the typed partial-update payload for a
// campaign. Only the fields present are applied.
type UpdateCampaignRequest struct {
	CampaignName                 *string `json:"campaign_name,omitempty" validate:"omitempty,min=3,max=255"`
	StartDate                    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate                      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RegistrationProcessStartDate *string `json:"registration_process_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	RegistrationProcessEndDate   *string `json:"registration_process_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// HasFields reports whether at least one mutable field is present.
func (r *UpdateCampaignRequest) HasFields() bool {
	return r.CampaignName != nil ||
		r.StartDate != nil ||
		r.EndDate != nil ||
		r.RegistrationProcessStartDate != nil ||
		r.RegistrationProcessEndDate != nil
}

// CampaignDTO represents campaign data for API responses
type CampaignDTO struct {
	CampaignID                   uint   `json:"campaign_id" example:"7"`
	CompanyID                    uint   `json:"company_id" example:"1"`
	CampaignName                 string `json:"campaign_name" example:"Winter checkups"`
	StartDate                    string `json:"start_date" example:"2023-12-01"`
	EndDate                      string `json:"end_date" example:"2023-12-16"`
	RegistrationProcessStartDate string `json:"registration_process_start_date" example:"2023-12-01"`
	RegistrationProcessEndDate   string `json:"registration_process_end_date" example:"2023-12-08"`
	CreatedAt                    string `json:"created_at" example:"2023-11-02T10:30:00Z"`
	UpdatedAt                    string `json:"updated_at,omitempty" example:"2023-11-03T09:00:00Z"`
}
