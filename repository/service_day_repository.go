package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
)

// ServiceDayRepositoryImpl implements the ServiceDayRepository interface
type ServiceDayRepositoryImpl struct {
	*BaseRepository[models.ServiceDay, models.ServiceDayFilter]
}

// NewServiceDayRepository creates a new service day repository
func NewServiceDayRepository(db *gorm.DB) ServiceDayRepository {
	return &ServiceDayRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ServiceDay, models.ServiceDayFilter](db),
	}
}

// ListByCampaign retrieves a campaign's service days ordered by date ascending
func (r *ServiceDayRepositoryImpl) ListByCampaign(ctx context.Context, campaignID uint) ([]*models.ServiceDay, error) {
	db := r.getDB(ctx)

	var days []*models.ServiceDay
	err := db.Where("campaign_id = ?", campaignID).Order("date").Find(&days).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list service days for campaign %d: %w", campaignID, err)
	}

	return days, nil
}

// BulkInsert inserts all dates in a single multi-row parameterized
// statement. The (campaign_id, date) uniqueness constraint with
// ON CONFLICT DO NOTHING makes duplicate submissions safe: rows that
// already exist, and duplicates within the same batch, are silently
// skipped and absent from the returned set.
func (r *ServiceDayRepositoryImpl) BulkInsert(ctx context.Context, campaignID uint, dates []time.Time) ([]*models.ServiceDay, error) {
	if len(dates) == 0 {
		return nil, nil
	}

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

	placeholders := make([]string, 0, len(dates))
	args := make([]any, 0, 2*len(dates))
	for _, date := range dates {
		placeholders = append(placeholders, "(?, ?)")
		args = append(args, campaignID, date)
	}

	query := "INSERT INTO service_days (campaign_id, date) VALUES " +
		strings.Join(placeholders, ", ") +
		" ON CONFLICT (campaign_id, date) DO NOTHING" +
		" RETURNING service_day_id, campaign_id, date, created_at, updated_at"

	var inserted []*models.ServiceDay
	if err = db.Raw(query, args...).Scan(&inserted).Error; err != nil {
		err = fmt.Errorf("failed to bulk insert service days: %w", err)
		return nil, err
	}

	return inserted, nil
}

// UpdateDate moves a service day to a new date, returning nil when no row
// matched
func (r *ServiceDayRepositoryImpl) UpdateDate(ctx context.Context, id uint, date time.Time) (*models.ServiceDay, error) {
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

	var updated []*models.ServiceDay
	res := db.Raw(
		"UPDATE service_days SET date = ?, updated_at = ? WHERE service_day_id = ? RETURNING service_day_id, campaign_id, date, created_at, updated_at",
		date, utils.UTCNow(), id,
	).Scan(&updated)
	if res.Error != nil {
		err = fmt.Errorf("failed to update service day %d: %w", id, res.Error)
		return nil, err
	}
	if len(updated) == 0 {
		return nil, nil
	}

	return updated[0], nil
}

// DeleteByCampaignAndIDs deletes the campaign's service days whose ids are
// members of ids; ids matching neither predicate are silently excluded
// from the returned set.
func (r *ServiceDayRepositoryImpl) DeleteByCampaignAndIDs(ctx context.Context, campaignID uint, ids []uint) ([]*models.ServiceDay, error) {
	if len(ids) == 0 {
		return nil, nil
	}

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

	idList := make([]int64, 0, len(ids))
	for _, id := range ids {
		idList = append(idList, int64(id))
	}

	var deleted []*models.ServiceDay
	if err = db.Raw(
		"DELETE FROM service_days WHERE campaign_id = ? AND service_day_id = ANY(?) RETURNING service_day_id, campaign_id, date, created_at, updated_at",
		campaignID, pq.Array(idList),
	).Scan(&deleted).Error; err != nil {
		err = fmt.Errorf("failed to delete service days for campaign %d: %w", campaignID, err)
		return nil, err
	}

	return deleted, nil
}
