package repository

import (
	"context"
	"fmt"

	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampaignRepositoryImpl implements the CampaignRepository interface
type CampaignRepositoryImpl struct {
	*BaseRepository[models.Campaign, models.CampaignFilter]
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Campaign, models.CampaignFilter](db),
	}
}

// List retrieves all campaigns ordered by id
func (r *CampaignRepositoryImpl) List(ctx context.Context) ([]*models.Campaign, error) {
	db := r.getDB(ctx)

	var campaigns []*models.Campaign
	err := db.Order("campaign_id").Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, nil
}

// ListByCompany retrieves all campaigns belonging to a company
func (r *CampaignRepositoryImpl) ListByCompany(ctx context.Context, companyID uint) ([]*models.Campaign, error) {
	db := r.getDB(ctx)

	var campaigns []*models.Campaign
	err := db.Where("company_id = ?", companyID).Order("start_date").Find(&campaigns).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns for company %d: %w", companyID, err)
	}

	return campaigns, nil
}

// Exists checks whether a campaign with the given id exists
func (r *CampaignRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&models.Campaign{}).Where("campaign_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check campaign existence: %w", err)
	}

	return count > 0, nil
}

// HasOverlapping checks both interval types independently: a service-window
// overlap OR a registration-window overlap with any campaign of the company
// triggers rejection. Two closed intervals [a,b] and [c,d] overlap iff
// a <= d AND b >= c.
func (r *CampaignRepositoryImpl) HasOverlapping(ctx context.Context, companyID uint, service, registration models.DateRange, excludeID *uint) (bool, error) {
	db := r.getDB(ctx)

	query := db.Model(&models.Campaign{}).
		Where("company_id = ?", companyID).
		Where(
			db.Session(&gorm.Session{NewDB: true}).
				Where("start_date <= ? AND end_date >= ?", service.End, service.Start).
				Or("registration_process_start_date <= ? AND registration_process_end_date >= ?", registration.End, registration.Start),
		)
	if excludeID != nil {
		query = query.Where("campaign_id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check overlapping campaigns: %w", err)
	}

	return count > 0, nil
}

// UpdateFields applies the patch's present fields, returning nil when no
// row matched
func (r *CampaignRepositoryImpl) UpdateFields(ctx context.Context, id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return nil, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	updates := map[string]any{"updated_at": utils.UTCNow()}
	if patch.CampaignName != nil {
		updates["campaign_name"] = *patch.CampaignName
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.RegistrationProcessStartDate != nil {
		updates["registration_process_start_date"] = *patch.RegistrationProcessStartDate
	}
	if patch.RegistrationProcessEndDate != nil {
		updates["registration_process_end_date"] = *patch.RegistrationProcessEndDate
	}

	var campaign models.Campaign
	res := db.Model(&campaign).
		Clauses(clause.Returning{}).
		Where("campaign_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		err = fmt.Errorf("failed to update campaign %d: %w", id, res.Error)
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &campaign, nil
}

// Delete removes a campaign, reporting whether a row was deleted
func (r *CampaignRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return false, err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	res := db.Where("campaign_id = ?", id).Delete(&models.Campaign{})
	if res.Error != nil {
		err = fmt.Errorf("failed to delete campaign %d: %w", id, res.Error)
		return false, err
	}

	return res.RowsAffected > 0, nil
}
