package testing

import (
	"fmt"
	"time"

	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
)

// TestFixtures creates domain entities directly in the test database
type TestFixtures struct {
	testDB *TestDB
}

// NewTestFixtures creates a new fixtures helper
func NewTestFixtures(testDB *TestDB) *TestFixtures {
	return &TestFixtures{testDB: testDB}
}

// CreateCompany inserts a company
func (f *TestFixtures) CreateCompany(name string) (*models.Company, error) {
	company := &models.Company{CompanyName: name}
	if err := f.testDB.DB.Create(company).Error; err != nil {
		return nil, fmt.Errorf("failed to create test company: %w", err)
	}
	return company, nil
}

// CreateCampaign inserts a campaign for the company with the given civil
// date strings
func (f *TestFixtures) CreateCampaign(companyID uint, name, start, end, regStart, regEnd string) (*models.Campaign, error) {
	campaign := &models.Campaign{
		CompanyID:    companyID,
		CampaignName: name,
	}

	var err error
	if campaign.StartDate, err = utils.ParseCivilDate(start); err != nil {
		return nil, err
	}
	if campaign.EndDate, err = utils.ParseCivilDate(end); err != nil {
		return nil, err
	}
	if campaign.RegistrationProcessStartDate, err = utils.ParseCivilDate(regStart); err != nil {
		return nil, err
	}
	if campaign.RegistrationProcessEndDate, err = utils.ParseCivilDate(regEnd); err != nil {
		return nil, err
	}

	if err := f.testDB.DB.Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create test campaign: %w", err)
	}
	return campaign, nil
}

// CreateServiceDay inserts a service day for the campaign
func (f *TestFixtures) CreateServiceDay(campaignID uint, date time.Time) (*models.ServiceDay, error) {
	day := &models.ServiceDay{
		CampaignID: campaignID,
		Date:       date,
	}
	if err := f.testDB.DB.Create(day).Error; err != nil {
		return nil, fmt.Errorf("failed to create test service day: %w", err)
	}
	return day, nil
}

// CreateUser inserts a user with the given role
func (f *TestFixtures) CreateUser(username, passwordHash string, role models.UserRole) (*models.User, error) {
	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := f.testDB.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create test user: %w", err)
	}
	return user, nil
}
