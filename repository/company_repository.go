package repository

import (
	"context"
	"fmt"

	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyRepositoryImpl implements the CompanyRepository interface
type CompanyRepositoryImpl struct {
	*BaseRepository[models.Company, models.CompanyFilter]
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Company, models.CompanyFilter](db),
	}
}

// List retrieves all companies ordered by id
func (r *CompanyRepositoryImpl) List(ctx context.Context) ([]*models.Company, error) {
	db := r.getDB(ctx)

	var companies []*models.Company
	err := db.Order("company_id").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

// Exists checks whether a company with the given id exists
func (r *CompanyRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&models.Company{}).Where("company_id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check company existence: %w", err)
	}

	return count > 0, nil
}

// UpdateName updates the company name, returning nil when no row matched
func (r *CompanyRepositoryImpl) UpdateName(ctx context.Context, id uint, name string) (*models.Company, error) {
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

	var company models.Company
	res := db.Model(&company).
		Clauses(clause.Returning{}).
		Where("company_id = ?", id).
		Updates(map[string]any{
			"company_name": name,
			"updated_at":   utils.UTCNow(),
		})
	if res.Error != nil {
		err = fmt.Errorf("failed to update company %d: %w", id, res.Error)
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return &company, nil
}

// Delete removes a company, reporting whether a row was deleted
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
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

	res := db.Where("company_id = ?", id).Delete(&models.Company{})
	if res.Error != nil {
		err = fmt.Errorf("failed to delete company %d: %w", id, res.Error)
		return false, err
	}

	return res.RowsAffected > 0, nil
}
