package businessflow

import (
	"context"
	"sort"
	"time"

	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// repositories implement, so flows can be exercised without a database.

type fakeCompanyRepo struct {
	companies map[uint]*models.Company
	nextID    uint
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[uint]*models.Company), nextID: 1}
}

func (r *fakeCompanyRepo) ByID(ctx context.Context, id uint) (*models.Company, error) {
	if company, ok := r.companies[id]; ok {
		copied := *company
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Save(ctx context.Context, company *models.Company) error {
	if company.ID == 0 {
		company.ID = r.nextID
		r.nextID++
	}
	if company.CreatedAt.IsZero() {
		company.CreatedAt = utils.UTCNow()
	}
	company.UpdatedAt = utils.UTCNow()
	copied := *company
	r.companies[company.ID] = &copied
	return nil
}

func (r *fakeCompanyRepo) SaveBatch(ctx context.Context, companies []*models.Company) error {
	for _, company := range companies {
		if err := r.Save(ctx, company); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*models.Company, error) {
	out := make([]*models.Company, 0, len(r.companies))
	for _, company := range r.companies {
		copied := *company
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCompanyRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.companies[id]
	return ok, nil
}

func (r *fakeCompanyRepo) UpdateName(ctx context.Context, id uint, name string) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	company.CompanyName = name
	company.UpdatedAt = utils.UTCNow()
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.companies[id]; !ok {
		return false, nil
	}
	delete(r.companies, id)
	return true, nil
}

type fakeCampaignRepo struct {
	campaigns map[uint]*models.Campaign
	nextID    uint
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[uint]*models.Campaign), nextID: 1}
}

func (r *fakeCampaignRepo) ByID(ctx context.Context, id uint) (*models.Campaign, error) {
	if campaign, ok := r.campaigns[id]; ok {
		copied := *campaign
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeCampaignRepo) Save(ctx context.Context, campaign *models.Campaign) error {
	if campaign.ID == 0 {
		campaign.ID = r.nextID
		r.nextID++
	}
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = utils.UTCNow()
	}
	copied := *campaign
	r.campaigns[campaign.ID] = &copied
	return nil
}

func (r *fakeCampaignRepo) SaveBatch(ctx context.Context, campaigns []*models.Campaign) error {
	for _, campaign := range campaigns {
		if err := r.Save(ctx, campaign); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCampaignRepo) List(ctx context.Context) ([]*models.Campaign, error) {
	out := make([]*models.Campaign, 0, len(r.campaigns))
	for _, campaign := range r.campaigns {
		copied := *campaign
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCampaignRepo) ListByCompany(ctx context.Context, companyID uint) ([]*models.Campaign, error) {
	var out []*models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.CompanyID == companyID {
			copied := *campaign
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCampaignRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := r.campaigns[id]
	return ok, nil
}

func (r *fakeCampaignRepo) HasOverlapping(ctx context.Context, companyID uint, service, registration models.DateRange, excludeID *uint) (bool, error) {
	for _, campaign := range r.campaigns {
		if campaign.CompanyID != companyID {
			continue
		}
		if excludeID != nil && campaign.ID == *excludeID {
			continue
		}
		if campaign.ServiceWindow().Overlaps(service) || campaign.RegistrationWindow().Overlaps(registration) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCampaignRepo) UpdateFields(ctx context.Context, id uint, patch models.CampaignPatch) (*models.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	merged := patch.ApplyTo(*campaign)
	merged.UpdatedAt = utils.UTCNowPtr()
	r.campaigns[id] = &merged
	copied := merged
	return &copied, nil
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id uint) (bool, error) {
	if _, ok := r.campaigns[id]; !ok {
		return false, nil
	}
	delete(r.campaigns, id)
	return true, nil
}

type fakeServiceDayRepo struct {
	days   map[uint]*models.ServiceDay
	nextID uint
}

func newFakeServiceDayRepo() *fakeServiceDayRepo {
	return &fakeServiceDayRepo{days: make(map[uint]*models.ServiceDay), nextID: 1}
}

func (r *fakeServiceDayRepo) ByID(ctx context.Context, id uint) (*models.ServiceDay, error) {
	if day, ok := r.days[id]; ok {
		copied := *day
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeServiceDayRepo) Save(ctx context.Context, day *models.ServiceDay) error {
	if day.ID == 0 {
		day.ID = r.nextID
		r.nextID++
	}
	now := utils.UTCNow()
	if day.CreatedAt.IsZero() {
		day.CreatedAt = now
	}
	day.UpdatedAt = now
	copied := *day
	r.days[day.ID] = &copied
	return nil
}

func (r *fakeServiceDayRepo) SaveBatch(ctx context.Context, days []*models.ServiceDay) error {
	for _, day := range days {
		if err := r.Save(ctx, day); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeServiceDayRepo) ListByCampaign(ctx context.Context, campaignID uint) ([]*models.ServiceDay, error) {
	var out []*models.ServiceDay
	for _, day := range r.days {
		if day.CampaignID == campaignID {
			copied := *day
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeServiceDayRepo) hasDate(campaignID uint, date time.Time) bool {
	for _, day := range r.days {
		if day.CampaignID == campaignID && utils.SameCivilDay(day.Date, date) {
			return true
		}
	}
	return false
}

// BulkInsert mimics INSERT ... ON CONFLICT DO NOTHING: existing
// (campaign, date) pairs and duplicates within the batch are skipped,
// and only newly inserted rows come back.
func (r *fakeServiceDayRepo) BulkInsert(ctx context.Context, campaignID uint, dates []time.Time) ([]*models.ServiceDay, error) {
	var inserted []*models.ServiceDay
	for _, date := range dates {
		if r.hasDate(campaignID, date) {
			continue
		}
		day := &models.ServiceDay{CampaignID: campaignID, Date: date}
		if err := r.Save(ctx, day); err != nil {
			return nil, err
		}
		copied := *day
		inserted = append(inserted, &copied)
	}
	return inserted, nil
}

func (r *fakeServiceDayRepo) UpdateDate(ctx context.Context, id uint, date time.Time) (*models.ServiceDay, error) {
	day, ok := r.days[id]
	if !ok {
		return nil, nil
	}
	day.Date = date
	day.UpdatedAt = utils.UTCNow()
	copied := *day
	return &copied, nil
}

func (r *fakeServiceDayRepo) DeleteByCampaignAndIDs(ctx context.Context, campaignID uint, ids []uint) ([]*models.ServiceDay, error) {
	var deleted []*models.ServiceDay
	for _, id := range ids {
		day, ok := r.days[id]
		if !ok || day.CampaignID != campaignID {
			continue
		}
		copied := *day
		deleted = append(deleted, &copied)
		delete(r.days, id)
	}
	sort.Slice(deleted, func(i, j int) bool { return deleted[i].ID < deleted[j].ID })
	return deleted, nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) ByID(ctx context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	}
	if user.Role == "" {
		user.Role = models.UserRoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = utils.UTCNow()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) SaveBatch(ctx context.Context, users []*models.User) error {
	for _, user := range users {
		if err := r.Save(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeUserRepo) ByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}
