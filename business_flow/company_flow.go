package businessflow

import (
	"context"

	"github.com/smilemobilul/campaign-backend/app/dto"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/repository"
)

// CompanyFlow handles the company business logic
type CompanyFlow interface {
	CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
	ListCompanies(ctx context.Context) ([]dto.CompanyDTO, error)
	GetCompany(ctx context.Context, id uint) (*dto.CompanyDTO, error)
	UpdateCompany(ctx context.Context, id uint, req *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
	DeleteCompany(ctx context.Context, id uint, metadata *ClientMetadata) error
}

// CompanyFlowImpl implements the company business flow
type CompanyFlowImpl struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyFlow creates a new company flow instance
func NewCompanyFlow(companyRepo repository.CompanyRepository) CompanyFlow {
	return &CompanyFlowImpl{
		companyRepo: companyRepo,
	}
}

// CreateCompany persists a new client company
func (s *CompanyFlowImpl) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	company := &models.Company{
		CompanyName: req.CompanyName,
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, NewBusinessError("COMPANY_CREATION_FAILED", "Company creation failed", err)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// ListCompanies returns all companies
func (s *CompanyFlowImpl) ListCompanies(ctx context.Context) ([]dto.CompanyDTO, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	out := make([]dto.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		out = append(out, ToCompanyDTO(*company))
	}
	return out, nil
}

// GetCompany returns one company by id
func (s *CompanyFlowImpl) GetCompany(ctx context.Context, id uint) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to lookup company", err)
	}
	if company == nil {
		return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// UpdateCompany renames a company
func (s *CompanyFlowImpl) UpdateCompany(ctx context.Context, id uint, req *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	company, err := s.companyRepo.UpdateName(ctx, id, req.CompanyName)
	if err != nil {
		return nil, NewBusinessError("COMPANY_UPDATE_FAILED", "Company update failed", err)
	}
	if company == nil {
		return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	out := ToCompanyDTO(*company)
	return &out, nil
}

// DeleteCompany removes a company. Deleting a company with active
// campaigns is left to the store's referential-integrity policy.
func (s *CompanyFlowImpl) DeleteCompany(ctx context.Context, id uint, metadata *ClientMetadata) error {
	deleted, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		return NewBusinessError("COMPANY_DELETION_FAILED", "Company deletion failed", err)
	}
	if !deleted {
		return NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	return nil
}
