// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/smilemobilul/campaign-backend/models"
)

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
}

// CompanyRepository defines operations for companies
type CompanyRepository interface {
	Repository[models.Company, models.CompanyFilter]
	List(ctx context.Context) ([]*models.Company, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateName(ctx context.Context, id uint, name string) (*models.Company, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// CampaignRepository defines operations for campaigns
type CampaignRepository interface {
	Repository[models.Campaign, models.CampaignFilter]
	List(ctx context.Context) ([]*models.Campaign, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*models.Campaign, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// HasOverlapping reports whether any campaign of the company has a
	// service window overlapping service, or a registration window
	// overlapping registration. Overlap is inclusive on both bounds.
	// excludeID, when non-nil, leaves that campaign out of the check.
	HasOverlapping(ctx context.Context, companyID uint, service, registration models.DateRange, excludeID *uint) (bool, error)
	UpdateFields(ctx context.Context, id uint, patch models.CampaignPatch) (*models.Campaign, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// ServiceDayRepository defines operations for service days
type ServiceDayRepository interface {
	Repository[models.ServiceDay, models.ServiceDayFilter]
	ListByCampaign(ctx context.Context, campaignID uint) ([]*models.ServiceDay, error)
	// BulkInsert persists all dates for the campaign in one parameterized
	// statement; (campaign_id, date) pairs that already exist are skipped
	// and only newly inserted rows are returned.
	BulkInsert(ctx context.Context, campaignID uint, dates []time.Time) ([]*models.ServiceDay, error)
	UpdateDate(ctx context.Context, id uint, date time.Time) (*models.ServiceDay, error)
	// DeleteByCampaignAndIDs removes the service days of the campaign whose
	// ids are in ids and returns the deleted rows.
	DeleteByCampaignAndIDs(ctx context.Context, campaignID uint, ids []uint) ([]*models.ServiceDay, error)
}

// UserRepository defines operations for users
type UserRepository interface {
	Repository[models.User, models.UserFilter]
	ByUsername(ctx context.Context, username string) (*models.User, error)
}
