package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemobilul/campaign-backend/app/dto"
	"github.com/smilemobilul/campaign-backend/models"
	"github.com/smilemobilul/campaign-backend/utils"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := utils.ParseCivilDate(s)
	require.NoError(t, err)
	return date
}

// winterCampaign runs 2023-12-01..2023-12-16 with registration
// 2023-12-01..2023-12-08, matching the canonical example flow.
func winterCampaign(t *testing.T) *models.Campaign {
	t.Helper()
	return &models.Campaign{
		ID:                           7,
		CompanyID:                    1,
		CampaignName:                 "Winter checkups",
		StartDate:                    mustDate(t, "2023-12-01"),
		EndDate:                      mustDate(t, "2023-12-16"),
		RegistrationProcessStartDate: mustDate(t, "2023-12-01"),
		RegistrationProcessEndDate:   mustDate(t, "2023-12-08"),
	}
}

func TestValidateServiceDate(t *testing.T) {
	campaign := winterCampaign(t)

	tests := []struct {
		name        string
		date        string
		wantErr     error
		wantMessage string
	}{
		{
			name:        "campaign start date is reserved",
			date:        "2023-12-01",
			wantErr:     ErrServiceDateOnCampaignStart,
			wantMessage: "Service date 2023-12-01 cannot be the same as the campaign start date.",
		},
		{
			name:        "inside registration window",
			date:        "2023-12-05",
			wantErr:     ErrServiceDateInRegistrationWindow,
			wantMessage: "Service date 2023-12-05 cannot be during the registration process (2023-12-01 to 2023-12-08).",
		},
		{
			name:        "registration window end is inclusive",
			date:        "2023-12-08",
			wantErr:     ErrServiceDateInRegistrationWindow,
			wantMessage: "Service date 2023-12-08 cannot be during the registration process (2023-12-01 to 2023-12-08).",
		},
		{
			name:        "after campaign end",
			date:        "2023-12-17",
			wantErr:     ErrServiceDateOutsideCampaignWindow,
			wantMessage: "Service date 2023-12-17 is not within the campaign date range (2023-12-01 to 2023-12-16).",
		},
		{
			name:        "before campaign start",
			date:        "2023-11-30",
			wantErr:     ErrServiceDateOutsideCampaignWindow,
			wantMessage: "Service date 2023-11-30 is not within the campaign date range (2023-12-01 to 2023-12-16).",
		},
		{
			name:    "first day after registration window",
			date:    "2023-12-09",
			wantErr: nil,
		},
		{
			name:    "campaign end date is a valid service date",
			date:    "2023-12-16",
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServiceDate(campaign, mustDate(t, tt.date))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var be *BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, tt.wantMessage, be.Message)
		})
	}
}

func newServiceDayFlowForTest(t *testing.T) (ServiceDayFlow, *fakeServiceDayRepo, *fakeCampaignRepo) {
	t.Helper()
	serviceDayRepo := newFakeServiceDayRepo()
	campaignRepo := newFakeCampaignRepo()
	flow := NewServiceDayFlow(serviceDayRepo, campaignRepo, nil)
	return flow, serviceDayRepo, campaignRepo
}

func TestScheduleServiceDays(t *testing.T) {
	ctx := context.Background()
	metadata := NewClientMetadata("127.0.0.1", "test-agent")

	t.Run("schedules the whole batch", func(t *testing.T) {
		flow, _, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))

		result, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 7,
			Dates:      []string{"2023-12-09", "2023-12-10", "2023-12-11"},
		}, metadata)

		require.NoError(t, err)
		require.Len(t, result, 3)
		assert.Equal(t, "2023-12-09", result[0].Date)
		assert.Equal(t, uint(7), result[0].CampaignID)
	})

	t.Run("one invalid date aborts the whole batch", func(t *testing.T) {
		flow, serviceDayRepo, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))

		result, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 7,
			Dates:      []string{"2023-12-09", "2023-12-05", "2023-12-11"},
		}, metadata)

		require.Error(t, err)
		assert.True(t, IsServiceDateInvalid(err))
		assert.Nil(t, result)

		days, listErr := serviceDayRepo.ListByCampaign(ctx, 7)
		require.NoError(t, listErr)
		assert.Empty(t, days, "no partial insert on batch failure")
	})

	t.Run("campaign must exist", func(t *testing.T) {
		flow, _, _ := newServiceDayFlowForTest(t)

		_, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 99,
			Dates:      []string{"2023-12-09"},
		}, metadata)

		assert.True(t, IsCampaignNotFound(err))
	})

	t.Run("already scheduled dates are skipped", func(t *testing.T) {
		flow, _, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))

		first, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 7,
			Dates:      []string{"2023-12-09"},
		}, metadata)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 7,
			Dates:      []string{"2023-12-09", "2023-12-10"},
		}, metadata)
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, "2023-12-10", second[0].Date)
	})

	t.Run("duplicates within one batch collapse to one row", func(t *testing.T) {
		flow, serviceDayRepo, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))

		result, err := flow.ScheduleServiceDays(ctx, &dto.CreateServiceDaysRequest{
			CampaignID: 7,
			Dates:      []string{"2023-12-09", "2023-12-09"},
		}, metadata)
		require.NoError(t, err)
		assert.Len(t, result, 1)

		days, listErr := serviceDayRepo.ListByCampaign(ctx, 7)
		require.NoError(t, listErr)
		assert.Len(t, days, 1)
	})
}

func TestListServiceDays(t *testing.T) {
	ctx := context.Background()
	flow, serviceDayRepo, campaignRepo := newServiceDayFlowForTest(t)
	require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))

	_, err := serviceDayRepo.BulkInsert(ctx, 7, []time.Time{
		mustDate(t, "2023-12-11"),
		mustDate(t, "2023-12-09"),
	})
	require.NoError(t, err)

	result, err := flow.ListServiceDays(ctx, 7)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2023-12-09", result[0].Date, "ordered by date")

	_, err = flow.ListServiceDays(ctx, 99)
	assert.True(t, IsCampaignNotFound(err))
}

func TestUpdateServiceDay(t *testing.T) {
	ctx := context.Background()
	metadata := NewClientMetadata("127.0.0.1", "test-agent")

	setup := func(t *testing.T) (ServiceDayFlow, *fakeServiceDayRepo, *fakeCampaignRepo, uint) {
		flow, serviceDayRepo, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))
		inserted, err := serviceDayRepo.BulkInsert(ctx, 7, []time.Time{mustDate(t, "2023-12-09")})
		require.NoError(t, err)
		require.Len(t, inserted, 1)
		return flow, serviceDayRepo, campaignRepo, inserted[0].ID
	}

	t.Run("moves the day to a valid date", func(t *testing.T) {
		flow, _, _, dayID := setup(t)

		result, err := flow.UpdateServiceDay(ctx, dayID, &dto.UpdateServiceDayRequest{Date: "2023-12-12"}, metadata)
		require.NoError(t, err)
		assert.Equal(t, "2023-12-12", result.Date)
		assert.Equal(t, uint(7), result.CampaignID)
	})

	t.Run("validates against the owning campaign, not the payload", func(t *testing.T) {
		flow, _, campaignRepo, dayID := setup(t)

		// A second campaign whose windows would accept 2023-12-05; the
		// payload names it, but ownership still binds the day to campaign 7.
		other := &models.Campaign{
			ID:                           8,
			CompanyID:                    2,
			CampaignName:                 "Spring checkups",
			StartDate:                    mustDate(t, "2023-11-01"),
			EndDate:                      mustDate(t, "2023-12-31"),
			RegistrationProcessStartDate: mustDate(t, "2023-11-01"),
			RegistrationProcessEndDate:   mustDate(t, "2023-11-10"),
		}
		require.NoError(t, campaignRepo.Save(ctx, other))

		_, err := flow.UpdateServiceDay(ctx, dayID, &dto.UpdateServiceDayRequest{
			CampaignID: 8,
			Date:       "2023-12-05",
		}, metadata)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceDateInRegistrationWindow)
	})

	t.Run("unknown service day", func(t *testing.T) {
		flow, _, _, _ := setup(t)

		_, err := flow.UpdateServiceDay(ctx, 999, &dto.UpdateServiceDayRequest{Date: "2023-12-12"}, metadata)
		assert.True(t, IsServiceDayNotFound(err))
	})

	t.Run("rejects a date outside the campaign window", func(t *testing.T) {
		flow, _, _, dayID := setup(t)

		_, err := flow.UpdateServiceDay(ctx, dayID, &dto.UpdateServiceDayRequest{Date: "2024-01-15"}, metadata)
		assert.ErrorIs(t, err, ErrServiceDateOutsideCampaignWindow)
	})
}

func TestDeleteServiceDays(t *testing.T) {
	ctx := context.Background()
	metadata := NewClientMetadata("127.0.0.1", "test-agent")

	setup := func(t *testing.T) (ServiceDayFlow, *fakeServiceDayRepo, []uint) {
		flow, serviceDayRepo, campaignRepo := newServiceDayFlowForTest(t)
		require.NoError(t, campaignRepo.Save(ctx, winterCampaign(t)))
		inserted, err := serviceDayRepo.BulkInsert(ctx, 7, []time.Time{
			mustDate(t, "2023-12-09"),
			mustDate(t, "2023-12-10"),
			mustDate(t, "2023-12-11"),
		})
		require.NoError(t, err)
		ids := make([]uint, 0, len(inserted))
		for _, day := range inserted {
			ids = append(ids, day.ID)
		}
		return flow, serviceDayRepo, ids
	}

	t.Run("deletes the requested days", func(t *testing.T) {
		flow, serviceDayRepo, ids := setup(t)

		result, err := flow.DeleteServiceDays(ctx, &dto.DeleteServiceDaysRequest{
			CampaignID:    7,
			ServiceDayIDs: ids[:2],
		}, metadata)

		require.NoError(t, err)
		assert.Len(t, result, 2)

		remaining, listErr := serviceDayRepo.ListByCampaign(ctx, 7)
		require.NoError(t, listErr)
		assert.Len(t, remaining, 1)
	})

	t.Run("ids matching no row are silently excluded", func(t *testing.T) {
		flow, _, ids := setup(t)

		result, err := flow.DeleteServiceDays(ctx, &dto.DeleteServiceDaysRequest{
			CampaignID:    7,
			ServiceDayIDs: []uint{ids[0], 999},
		}, metadata)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("empty deleted set is not found", func(t *testing.T) {
		flow, _, _ := setup(t)

		_, err := flow.DeleteServiceDays(ctx, &dto.DeleteServiceDaysRequest{
			CampaignID:    7,
			ServiceDayIDs: []uint{777, 888},
		}, metadata)

		assert.True(t, IsServiceDaysNotFound(err))
	})

	t.Run("campaign must exist", func(t *testing.T) {
		flow, _, ids := setup(t)

		_, err := flow.DeleteServiceDays(ctx, &dto.DeleteServiceDaysRequest{
			CampaignID:    99,
			ServiceDayIDs: ids,
		}, metadata)

		assert.True(t, IsCampaignNotFound(err))
	})
}
