package businessflow

import (
	"context"
	"log"
	"time"

	"github.com/smilemobilul/campaign-backend/app/dto"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/repository"
	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
)

// CampaignFlow handles the campaign business logic, including the window
// validation that decides whether a proposed campaign may coexist with a
// company's existing campaigns.
type CampaignFlow interface {
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error)
	ListCampaigns(ctx context.Context) ([]dto.CampaignDTO, error)
	GetCampaign(ctx context.Context, id uint) (*dto.CampaignDTO, error)
	UpdateCampaign(ctx context.Context, id uint, req *dto.UpdateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error)
	DeleteCampaign(ctx context.Context, id uint, metadata *ClientMetadata) error
}

// CampaignFlowImpl implements the campaign business flow
type CampaignFlowImpl struct {
	campaignRepo repository.CampaignRepository
	companyRepo  repository.CompanyRepository
	db           *gorm.DB
}

// NewCampaignFlow creates a new campaign flow instance
func NewCampaignFlow(
	campaignRepo repository.CampaignRepository,
	companyRepo repository.CompanyRepository,
	db *gorm.DB,
) CampaignFlow {
	return &CampaignFlowImpl{
		campaignRepo: campaignRepo,
		companyRepo:  companyRepo,
		db:           db,
	}
}

// parseCampaignDates anchors the four wire dates to the canonical timezone.
// Well-formedness of the strings is guaranteed by schema validation; a
// parse failure here is a programming error surfaced as a business error.
func parseCampaignDates(startDate, endDate, regStart, regEnd string) (campaign models.Campaign, err error) {
	if campaign.StartDate, err = utils.ParseCivilDate(startDate); err != nil {
		return campaign, err
	}
	if campaign.EndDate, err = utils.ParseCivilDate(endDate); err != nil {
		return campaign, err
	}
	if campaign.RegistrationProcessStartDate, err = utils.ParseCivilDate(regStart); err != nil {
		return campaign, err
	}
	if campaign.RegistrationProcessEndDate, err = utils.ParseCivilDate(regEnd); err != nil {
		return campaign, err
	}
	return campaign, nil
}

// validateCampaignWindows enforces the structural window invariants:
// registration start <= registration end and start <= end.
func validateCampaignWindows(campaign *models.Campaign) error {
	if !campaign.RegistrationWindow().Valid() {
		return ErrRegistrationWindowInvalid
	}
	if !campaign.ServiceWindow().Valid() {
		return ErrCampaignWindowInvalid
	}
	return nil
}

// CreateCampaign validates the candidate campaign against the company's
// existing campaigns and persists it. The existence check, the overlap
// check, and the insert run in one transaction so concurrent creations
// cannot both pass the overlap check.
func (s *CampaignFlowImpl) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error) {
	candidate, err := parseCampaignDates(req.StartDate, req.EndDate, req.RegistrationProcessStartDate, req.RegistrationProcessEndDate)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign validation failed", err)
	}
	candidate.CampaignName = req.CampaignName
	candidate.CompanyID = req.CompanyID

	if err := validateCampaignWindows(&candidate); err != nil {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign validation failed", err)
	}

	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.companyRepo.Exists(txCtx, req.CompanyID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCompanyNotFound
		}

		overlapping, err := s.campaignRepo.HasOverlapping(txCtx, req.CompanyID, candidate.ServiceWindow(), candidate.RegistrationWindow(), nil)
		if err != nil {
			return err
		}
		if overlapping {
			return ErrCampaignOverlap
		}

		return s.campaignRepo.Save(txCtx, &candidate)
	})
	if err != nil {
		if IsCompanyNotFound(err) {
			return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", err)
		}
		if IsCampaignOverlap(err) {
			return nil, NewBusinessErrorf("CAMPAIGN_OVERLAP", err,
				"Campaign dates overlap an existing campaign for company %d", req.CompanyID)
		}

		log.Println("Campaign creation failed", err)
		return nil, NewBusinessError("CAMPAIGN_CREATION_FAILED", "Campaign creation failed", err)
	}

	out := ToCampaignDTO(candidate)
	return &out, nil
}

// ListCampaigns returns all campaigns
func (s *CampaignFlowImpl) ListCampaigns(ctx context.Context) ([]dto.CampaignDTO, error) {
	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LIST_FAILED", "Failed to list campaigns", err)
	}

	out := make([]dto.CampaignDTO, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, ToCampaignDTO(*campaign))
	}
	return out, nil
}

// GetCampaign returns one campaign by id
func (s *CampaignFlowImpl) GetCampaign(ctx context.Context, id uint) (*dto.CampaignDTO, error) {
	campaign, err := s.campaignRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to lookup campaign", err)
	}
	if campaign == nil {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	out := ToCampaignDTO(*campaign)
	return &out, nil
}

// UpdateCampaign applies a typed partial update. When any of the four
// window dates change, the merged campaign must still satisfy the window
// invariants and the overlap rule against the company's other campaigns.
func (s *CampaignFlowImpl) UpdateCampaign(ctx context.Context, id uint, req *dto.UpdateCampaignRequest, metadata *ClientMetadata) (*dto.CampaignDTO, error) {
	if !req.HasFields() {
		return nil, NewBusinessError("CAMPAIGN_UPDATE_REQUIRED", "At least one field must be provided for update", ErrCampaignUpdateRequired)
	}

	patch, err := buildCampaignPatch(req)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign validation failed", err)
	}

	var updated *models.Campaign
	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.campaignRepo.ByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCampaignNotFound
		}

		merged := patch.ApplyTo(*existing)
		if err := validateCampaignWindows(&merged); err != nil {
			return err
		}

		if patch.TouchesDates() {
			overlapping, err := s.campaignRepo.HasOverlapping(txCtx, existing.CompanyID, merged.ServiceWindow(), merged.RegistrationWindow(), &id)
			if err != nil {
				return err
			}
			if overlapping {
				return ErrCampaignOverlap
			}
		}

		updated, err = s.campaignRepo.UpdateFields(txCtx, id, patch)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrCampaignNotFound
		}
		return nil
	})
	if err != nil {
		if IsCampaignNotFound(err) {
			return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", err)
		}
		if IsCampaignOverlap(err) {
			return nil, NewBusinessError("CAMPAIGN_OVERLAP", "Campaign dates overlap an existing campaign", err)
		}
		if IsCampaignWindowInvalid(err) || IsRegistrationWindowInvalid(err) {
			return nil, NewBusinessError("CAMPAIGN_VALIDATION_FAILED", "Campaign validation failed", err)
		}

		log.Println("Campaign update failed", err)
		return nil, NewBusinessError("CAMPAIGN_UPDATE_FAILED", "Campaign update failed", err)
	}

	out := ToCampaignDTO(*updated)
	return &out, nil
}

// DeleteCampaign removes a campaign; its service days cascade at the store
func (s *CampaignFlowImpl) DeleteCampaign(ctx context.Context, id uint, metadata *ClientMetadata) error {
	deleted, err := s.campaignRepo.Delete(ctx, id)
	if err != nil {
		return NewBusinessError("CAMPAIGN_DELETION_FAILED", "Campaign deletion failed", err)
	}
	if !deleted {
		return NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	return nil
}

func buildCampaignPatch(req *dto.UpdateCampaignRequest) (models.CampaignPatch, error) {
	var patch models.CampaignPatch

	patch.CampaignName = req.CampaignName

	parse := func(s *string) (*time.Time, error) {
		if s == nil {
			return nil, nil
		}
		t, err := utils.ParseCivilDate(*s)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}

	var err error
	if patch.StartDate, err = parse(req.StartDate); err != nil {
		return patch, err
	}
	if patch.EndDate, err = parse(req.EndDate); err != nil {
		return patch, err
	}
	if patch.RegistrationProcessStartDate, err = parse(req.RegistrationProcessStartDate); err != nil {
		return patch, err
	}
	if patch.RegistrationProcessEndDate, err = parse(req.RegistrationProcessEndDate); err != nil {
		return patch, err
	}

	return patch, nil
}
