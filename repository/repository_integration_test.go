package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/repository"
	testingutil "github.com/smilemobilul/campaign-backend/testing"
	"github.com/smilemobilul/campaign-backend/utils"
)

// withTestDB runs fn against a disposable database. The suite only runs
// when TEST_DB_HOST points at a reachable PostgreSQL server.
func withTestDB(t *testing.T, fn func(t *testing.T, testDB *testingutil.TestDB)) {
	t.Helper()
	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database integration tests")
	}

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fn(t, testDB)
		return nil
	})
	require.NoError(t, err)
}

func TestServiceDayRepository_BulkInsert(t *testing.T) {
	withTestDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		ctx := context.Background()
		fixtures := testingutil.NewTestFixtures(testDB)

		company, err := fixtures.CreateCompany("Zahnklinik Nord")
		require.NoError(t, err)
		campaign, err := fixtures.CreateCampaign(company.ID, "Winter checkups",
			"2023-12-01", "2023-12-16", "2023-12-01", "2023-12-08")
		require.NoError(t, err)

		repo := repository.NewServiceDayRepository(testDB.DB)

		d9, err := utils.ParseCivilDate("2023-12-09")
		require.NoError(t, err)
		d10, err := utils.ParseCivilDate("2023-12-10")
		require.NoError(t, err)

		inserted, err := repo.BulkInsert(ctx, campaign.ID, []time.Time{d9, d10})
		require.NoError(t, err)
		assert.Len(t, inserted, 2)

		// Re-inserting one existing date only returns the new row
		d11, err := utils.ParseCivilDate("2023-12-11")
		require.NoError(t, err)
		second, err := repo.BulkInsert(ctx, campaign.ID, []time.Time{d9, d11})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.True(t, utils.SameCivilDay(second[0].Date, d11))

		days, err := repo.ListByCampaign(ctx, campaign.ID)
		require.NoError(t, err)
		assert.Len(t, days, 3)
	})
}

func TestServiceDayRepository_DeleteByCampaignAndIDs(t *testing.T) {
	withTestDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		ctx := context.Background()
		fixtures := testingutil.NewTestFixtures(testDB)

		company, err := fixtures.CreateCompany("Zahnklinik Nord")
		require.NoError(t, err)
		first, err := fixtures.CreateCampaign(company.ID, "Winter checkups",
			"2023-12-01", "2023-12-16", "2023-12-01", "2023-12-08")
		require.NoError(t, err)
		second, err := fixtures.CreateCampaign(company.ID, "Spring checkups",
			"2024-03-01", "2024-03-16", "2024-03-01", "2024-03-08")
		require.NoError(t, err)

		d9, err := utils.ParseCivilDate("2023-12-09")
		require.NoError(t, err)
		mine, err := fixtures.CreateServiceDay(first.ID, d9)
		require.NoError(t, err)
		m9, err := utils.ParseCivilDate("2024-03-09")
		require.NoError(t, err)
		alien, err := fixtures.CreateServiceDay(second.ID, m9)
		require.NoError(t, err)

		repo := repository.NewServiceDayRepository(testDB.DB)

		// The alien id belongs to another campaign and must not be deleted
		deleted, err := repo.DeleteByCampaignAndIDs(ctx, first.ID, []uint{mine.ID, alien.ID, 9999})
		require.NoError(t, err)
		require.Len(t, deleted, 1)
		assert.Equal(t, mine.ID, deleted[0].ID)

		remaining, err := repo.ListByCampaign(ctx, second.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})
}

func TestCampaignRepository_HasOverlapping(t *testing.T) {
	withTestDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		ctx := context.Background()
		fixtures := testingutil.NewTestFixtures(testDB)

		company, err := fixtures.CreateCompany("Zahnklinik Nord")
		require.NoError(t, err)
		existing, err := fixtures.CreateCampaign(company.ID, "Winter checkups",
			"2023-12-01", "2023-12-16", "2023-12-01", "2023-12-08")
		require.NoError(t, err)

		repo := repository.NewCampaignRepository(testDB.DB)

		window := func(start, end string) models.DateRange {
			s, err := utils.ParseCivilDate(start)
			require.NoError(t, err)
			e, err := utils.ParseCivilDate(end)
			require.NoError(t, err)
			return models.DateRange{Start: s, End: e}
		}

		// Shared boundary day counts as overlap
		overlapping, err := repo.HasOverlapping(ctx, company.ID,
			window("2023-12-16", "2023-12-31"), window("2023-12-20", "2023-12-22"), nil)
		require.NoError(t, err)
		assert.True(t, overlapping)

		// Fully disjoint windows do not
		overlapping, err = repo.HasOverlapping(ctx, company.ID,
			window("2024-01-01", "2024-01-31"), window("2024-01-01", "2024-01-05"), nil)
		require.NoError(t, err)
		assert.False(t, overlapping)

		// Excluding the campaign ignores its own windows
		overlapping, err = repo.HasOverlapping(ctx, company.ID,
			window("2023-12-01", "2023-12-16"), window("2023-12-01", "2023-12-08"), &existing.ID)
		require.NoError(t, err)
		assert.False(t, overlapping)
	})
}

func TestCampaignRepository_ListByCompany(t *testing.T) {
	withTestDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		ctx := context.Background()
		fixtures := testingutil.NewTestFixtures(testDB)

		first, err := fixtures.CreateCompany("Zahnklinik Nord")
		require.NoError(t, err)
		second, err := fixtures.CreateCompany("Zahnklinik Sued")
		require.NoError(t, err)

		_, err = fixtures.CreateCampaign(first.ID, "Winter checkups",
			"2023-12-01", "2023-12-16", "2023-12-01", "2023-12-08")
		require.NoError(t, err)
		_, err = fixtures.CreateCampaign(second.ID, "Spring checkups",
			"2024-03-01", "2024-03-16", "2024-03-01", "2024-03-08")
		require.NoError(t, err)

		repo := repository.NewCampaignRepository(testDB.DB)

		campaigns, err := repo.ListByCompany(ctx, first.ID)
		require.NoError(t, err)
		require.Len(t, campaigns, 1)
		assert.Equal(t, "Winter checkups", campaigns[0].CampaignName)
	})
}

func TestCompanyRepository_UpdateName(t *testing.T) {
	withTestDB(t, func(t *testing.T, testDB *testingutil.TestDB) {
		ctx := context.Background()
		fixtures := testingutil.NewTestFixtures(testDB)

		company, err := fixtures.CreateCompany("Zahnklinik Nord")
		require.NoError(t, err)

		repo := repository.NewCompanyRepository(testDB.DB)

		updated, err := repo.UpdateName(ctx, company.ID, "Zahnklinik Sued")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Zahnklinik Sued", updated.CompanyName)

		missing, err := repo.UpdateName(ctx, 9999, "Nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
