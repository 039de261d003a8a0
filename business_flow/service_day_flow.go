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

// ServiceDayFlow handles the service day business logic: validating
// candidate dates against a campaign's windows and persisting the
// accepted set idempotently.
type ServiceDayFlow interface {
	ScheduleServiceDays(ctx context.Context, req *dto.CreateServiceDaysRequest, metadata *ClientMetadata) ([]dto.ServiceDayDTO, error)
	ListServiceDays(ctx context.Context, campaignID uint) ([]dto.ServiceDayDTO, error)
	UpdateServiceDay(ctx context.Context, serviceDayID uint, req *dto.UpdateServiceDayRequest, metadata *ClientMetadata) (*dto.ServiceDayDTO, error)
	DeleteServiceDays(ctx context.Context, req *dto.DeleteServiceDaysRequest, metadata *ClientMetadata) ([]dto.ServiceDayDTO, error)
}

// ServiceDayFlowImpl implements the service day business flow
type ServiceDayFlowImpl struct {
	serviceDayRepo repository.ServiceDayRepository
	campaignRepo   repository.CampaignRepository
	db             *gorm.DB
}

// NewServiceDayFlow creates a new service day flow instance
func NewServiceDayFlow(
	serviceDayRepo repository.ServiceDayRepository,
	campaignRepo repository.CampaignRepository,
	db *gorm.DB,
) ServiceDayFlow {
	return &ServiceDayFlowImpl{
		serviceDayRepo: serviceDayRepo,
		campaignRepo:   campaignRepo,
		db:             db,
	}
}

// validateServiceDate checks one candidate date against the campaign's
// windows at whole-day granularity. Rules are evaluated in order and the
// first failing rule wins:
//  1. the date may not equal the campaign start date (the first day is
//     reserved),
//  2. the date may not fall inside the registration window, bounds
//     included,
//  3. the date must fall inside the campaign window, bounds included.
func validateServiceDate(campaign *models.Campaign, date time.Time) error {
	wire := utils.FormatCivilDate(date)

	if utils.SameCivilDay(date, campaign.StartDate) {
		return NewBusinessErrorf("SERVICE_DATE_ON_CAMPAIGN_START", ErrServiceDateOnCampaignStart,
			"Service date %s cannot be the same as the campaign start date.", wire)
	}

	if campaign.RegistrationWindow().Contains(date) {
		return NewBusinessErrorf("SERVICE_DATE_IN_REGISTRATION_WINDOW", ErrServiceDateInRegistrationWindow,
			"Service date %s cannot be during the registration process (%s to %s).",
			wire,
			utils.FormatCivilDate(campaign.RegistrationProcessStartDate),
			utils.FormatCivilDate(campaign.RegistrationProcessEndDate))
	}

	if !campaign.ServiceWindow().Contains(date) {
		return NewBusinessErrorf("SERVICE_DATE_OUTSIDE_CAMPAIGN", ErrServiceDateOutsideCampaignWindow,
			"Service date %s is not within the campaign date range (%s to %s).",
			wire,
			utils.FormatCivilDate(campaign.StartDate),
			utils.FormatCivilDate(campaign.EndDate))
	}

	return nil
}

// ScheduleServiceDays validates every candidate date against the campaign,
// then persists the whole batch in one bulk insert. A single invalid date
// aborts the entire batch; dates already scheduled are skipped and omitted
// from the returned set.
func (s *ServiceDayFlowImpl) ScheduleServiceDays(ctx context.Context, req *dto.CreateServiceDaysRequest, metadata *ClientMetadata) ([]dto.ServiceDayDTO, error) {
	dates := make([]time.Time, 0, len(req.Dates))
	for _, wire := range req.Dates {
		date, err := utils.ParseCivilDate(wire)
		if err != nil {
			return nil, NewBusinessError("SERVICE_DAY_VALIDATION_FAILED", "Service day validation failed", err)
		}
		dates = append(dates, date)
	}

	var inserted []*models.ServiceDay
	err := repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		campaign, err := s.campaignRepo.ByID(txCtx, req.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return ErrCampaignNotFound
		}

		for _, date := range dates {
			if err := validateServiceDate(campaign, date); err != nil {
				return err
			}
		}

		inserted, err = s.serviceDayRepo.BulkInsert(txCtx, req.CampaignID, dates)
		return err
	})
	if err != nil {
		if IsCampaignNotFound(err) {
			return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", err)
		}
		if IsServiceDateInvalid(err) {
			return nil, err
		}

		log.Println("Service day scheduling failed", err)
		return nil, NewBusinessError("SERVICE_DAY_CREATION_FAILED", "Service day creation failed", err)
	}

	return ToServiceDayDTOs(inserted), nil
}

// ListServiceDays returns a campaign's service days ordered by date
func (s *ServiceDayFlowImpl) ListServiceDays(ctx context.Context, campaignID uint) ([]dto.ServiceDayDTO, error) {
	exists, err := s.campaignRepo.Exists(ctx, campaignID)
	if err != nil {
		return nil, NewBusinessError("CAMPAIGN_LOOKUP_FAILED", "Failed to lookup campaign", err)
	}
	if !exists {
		return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", ErrCampaignNotFound)
	}

	days, err := s.serviceDayRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_DAY_LIST_FAILED", "Failed to list service days", err)
	}

	return ToServiceDayDTOs(days), nil
}

// UpdateServiceDay moves a service day to a new date. The new date is
// validated against the service day's actual owning campaign; the
// campaign_id in the payload carries no ownership authority.
func (s *ServiceDayFlowImpl) UpdateServiceDay(ctx context.Context, serviceDayID uint, req *dto.UpdateServiceDayRequest, metadata *ClientMetadata) (*dto.ServiceDayDTO, error) {
	newDate, err := utils.ParseCivilDate(req.Date)
	if err != nil {
		return nil, NewBusinessError("SERVICE_DAY_VALIDATION_FAILED", "Service day validation failed", err)
	}

	var updated *models.ServiceDay
	err = repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		day, err := s.serviceDayRepo.ByID(txCtx, serviceDayID)
		if err != nil {
			return err
		}
		if day == nil {
			return ErrServiceDayNotFound
		}

		campaign, err := s.campaignRepo.ByID(txCtx, day.CampaignID)
		if err != nil {
			return err
		}
		if campaign == nil {
			return ErrCampaignNotFound
		}

		if err := validateServiceDate(campaign, newDate); err != nil {
			return err
		}

		updated, err = s.serviceDayRepo.UpdateDate(txCtx, serviceDayID, newDate)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrServiceDayNotFound
		}
		return nil
	})
	if err != nil {
		if IsServiceDayNotFound(err) {
			return nil, NewBusinessError("SERVICE_DAY_NOT_FOUND", "Service day not found", err)
		}
		if IsCampaignNotFound(err) {
			return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", err)
		}
		if IsServiceDateInvalid(err) {
			return nil, err
		}

		log.Println("Service day update failed", err)
		return nil, NewBusinessError("SERVICE_DAY_UPDATE_FAILED", "Service day update failed", err)
	}

	out := ToServiceDayDTO(*updated)
	return &out, nil
}

// DeleteServiceDays removes the campaign's service days whose ids are in
// the request. Ids matching no row are silently excluded; an entirely
// empty deleted set is reported as not found.
func (s *ServiceDayFlowImpl) DeleteServiceDays(ctx context.Context, req *dto.DeleteServiceDaysRequest, metadata *ClientMetadata) ([]dto.ServiceDayDTO, error) {
	var deleted []*models.ServiceDay
	err := repository.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		exists, err := s.campaignRepo.Exists(txCtx, req.CampaignID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCampaignNotFound
		}

		deleted, err = s.serviceDayRepo.DeleteByCampaignAndIDs(txCtx, req.CampaignID, req.ServiceDayIDs)
		if err != nil {
			return err
		}
		if len(deleted) == 0 {
			return ErrServiceDaysNotFound
		}
		return nil
	})
	if err != nil {
		if IsCampaignNotFound(err) {
			return nil, NewBusinessError("CAMPAIGN_NOT_FOUND", "Campaign not found", err)
		}
		if IsServiceDaysNotFound(err) {
			return nil, NewBusinessError("SERVICE_DAYS_NOT_FOUND", "Service days not found", err)
		}

		log.Println("Service day deletion failed", err)
		return nil, NewBusinessError("SERVICE_DAY_DELETION_FAILED", "Service day deletion failed", err)
	}

	return ToServiceDayDTOs(deleted), nil
}
