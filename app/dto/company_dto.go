package dto

// CreateCompanyRequest represents the request payload for company creation
type CreateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=5,max=255" example:"Dent Est SRL"`
}

// UpdateCompanyRequest represents the request payload for renaming a company
type UpdateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,min=5,max=255" example:"Dent Est SRL"`
}

// CompanyDTO represents company data for API responses
type CompanyDTO struct {
	CompanyID   uint   `json:"company_id" example:"1"`
	CompanyName string `json:"company_name" example:"Dent Est SRL"`
	CreatedAt   string `json:"created_at" example:"2023-11-02T10:30:00Z"`
	UpdatedAt   string `json:"updated_at" example:"2023-11-02T10:30:00Z"`
}
