package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/billswitch/internal/domain/entity"
	"github.com/diillson/billswitch/internal/shared/types"
)

func TestCarrierRepository_Alternatives(t *testing.T) {
	repo := NewCarrierRepository()

	offers, err := repo.Alternatives(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 5)

	prices := map[string]float64{}
	for _, o := range offers {
		prices[o.ID] = o.MonthlyPrice
		assert.NotEmpty(t, o.Features, o.ID)
	}
	assert.Equal(t, map[string]float64{"tmobile": 65, "verizon": 70, "att": 75, "visible": 40, "mint": 30}, prices)

	offers[0].Features[0] = "changed"
	again, err := repo.Alternatives(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5G access", again[0].Features[0])
}

func TestCarrierRepository_Profiles(t *testing.T) {
	profiles, err := NewCarrierRepository().Profiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 3)

	for _, p := range profiles {
		assert.Len(t, p.Plans, 3, p.ID)
		assert.NotZero(t, p.Coverage.Overall, p.ID)
	}
}

func TestCarrierRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCarrierRepository().Alternatives(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCarrierRepository_DefaultCurrentPlan(t *testing.T) {
	assert.Equal(t, entity.CurrentPlan{Name: "Big Mobile Inc.", MonthlyPrice: 89.99, Lines: 1}, NewCarrierRepository().DefaultCurrentPlan())
}

func TestCoverageRepository_Check(t *testing.T) {
	repo := NewCoverageRepository()

	report, err := repo.Check(context.Background(), "94105", "10001")
	require.NoError(t, err)
	assert.Equal(t, "94105", report.HomeZip)
	require.Len(t, report.Carriers, 5)

	verizon := report.Carriers[0]
	assert.Equal(t, "verizon", verizon.CarrierID)
	assert.Equal(t, 93.5, verizon.Average)
	assert.Equal(t, entity.CoverageExcellent, verizon.HomeStatus)

	mint := report.Carriers[4]
	assert.Equal(t, entity.CoverageGood, mint.WorkStatus)
}

func TestCoverageRepository_InvalidZip(t *testing.T) {
	repo := NewCoverageRepository()

	_, err := repo.Check(context.Background(), "9410", "10001")
	assert.ErrorIs(t, err, types.ErrInvalidZip)

	_, err = repo.Check(context.Background(), "94105", "ABCDE")
	assert.ErrorIs(t, err, types.ErrInvalidZip)
}
