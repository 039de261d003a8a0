// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/smilemobilul/campaign-backend/app/dto"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
)

// ClientMetadata holds client-related information for logging and tracing
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToCompanyDTO converts a company model for API responses
func ToCompanyDTO(company models.Company) dto.CompanyDTO {
	return dto.CompanyDTO{
		CompanyID:   company.ID,
		CompanyName: company.CompanyName,
		CreatedAt:   company.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   company.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCampaignDTO converts a campaign model for API responses; the four
// window dates are rendered back to their YYYY-MM-DD civil form.
func ToCampaignDTO(campaign models.Campaign) dto.CampaignDTO {
	out := dto.CampaignDTO{
		CampaignID:                   campaign.ID,
		CompanyID:                    campaign.CompanyID,
		CampaignName:                 campaign.CampaignName,
		StartDate:                    utils.FormatCivilDate(campaign.StartDate),
		EndDate:                      utils.FormatCivilDate(campaign.EndDate),
		RegistrationProcessStartDate: utils.FormatCivilDate(campaign.RegistrationProcessStartDate),
		RegistrationProcessEndDate:   utils.FormatCivilDate(campaign.RegistrationProcessEndDate),
		CreatedAt:                    campaign.CreatedAt.Format(time.RFC3339),
	}
	if campaign.UpdatedAt != nil {
		out.UpdatedAt = campaign.UpdatedAt.Format(time.RFC3339)
	}
	return out
}

// ToServiceDayDTO converts a service day model for API responses
func ToServiceDayDTO(day models.ServiceDay) dto.ServiceDayDTO {
	return dto.ServiceDayDTO{
		ServiceDayID: day.ID,
		CampaignID:   day.CampaignID,
		Date:         utils.FormatCivilDate(day.Date),
		CreatedAt:    day.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    day.UpdatedAt.Format(time.RFC3339),
	}
}

// ToServiceDayDTOs converts a slice of service day models
func ToServiceDayDTOs(days []*models.ServiceDay) []dto.ServiceDayDTO {
	out := make([]dto.ServiceDayDTO, 0, len(days))
	for _, day := range days {
		out = append(out, ToServiceDayDTO(*day))
	}
	return out
}
