package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/usecases"
)

func newAssetUsecaseForTest() (*usecases.AssetUsecase, *MockUnitOfWork, *MockAssetRepository, *MockProfileRepository) {
	uow := new(MockUnitOfWork)
	assets := new(MockAssetRepository)
	profiles := new(MockProfileRepository)
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	return usecases.NewAssetUsecase(uow, assets, profiles), uow, assets, profiles
}

func TestAssetUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("agricultural land is normalized and carries its detail", func(t *testing.T) {
		uc, _, assets, profiles := newAssetUsecaseForTest()
		profiles.On("GetCitizenByUsername", ctx, "alice").Return(&entities.Citizen{ID: 1, Username: "alice"}, nil).Once()
		assets.On("Create", ctx, mock.MatchedBy(func(a *entities.Asset) bool {
			return a.Type == entities.AssetTypeAgriculturalLand && a.AgriculturalLand != nil && a.AgriculturalLand.CropType == "Paddy"
		})).Return(nil).Once()

		asset, err := uc.Create(ctx, employeeRavi, &entities.CreateAssetInput{
			Username:  "alice",
			Type:      "Agricultural Land",
			Valuation: "12 lakh",
			AgriculturalLand: &entities.AgriculturalLandInput{
				Year: 2024, Season: "Kharif", CropType: "Paddy", AreaCultivated: 2.5, Yield: 40,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), asset.CitizenID)
		assets.AssertExpectations(t)
	})

	t.Run("land detail on a non agricultural asset", func(t *testing.T) {
		uc, _, _, profiles := newAssetUsecaseForTest()
		profiles.On("GetCitizenByUsername", ctx, "alice").Return(&entities.Citizen{ID: 1}, nil).Once()

		_, err := uc.Create(ctx, employeeRavi, &entities.CreateAssetInput{
			Username: "alice", Type: "House", Valuation: "5 lakh",
			AgriculturalLand: &entities.AgriculturalLandInput{Year: 2024, Season: "Rabi", CropType: "Wheat"},
		})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("citizen must exist", func(t *testing.T) {
		uc, _, assets, profiles := newAssetUsecaseForTest()
		profiles.On("GetCitizenByUsername", ctx, "ghost").Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.Create(ctx, employeeRavi, &entities.CreateAssetInput{Username: "ghost", Type: "House", Valuation: "1"})
		requireStatus(t, err, http.StatusNotFound)
		assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("citizens cannot create assets", func(t *testing.T) {
		uc, _, _, profiles := newAssetUsecaseForTest()
		profiles.On("GetCitizenByUsername", ctx, "alice").Return(&entities.Citizen{ID: 1}, nil).Once()

		_, err := uc.Create(ctx, citizenAlice, &entities.CreateAssetInput{Username: "alice", Type: "House", Valuation: "1"})
		requireStatus(t, err, http.StatusForbidden)
	})
}

func TestAssetUsecase_Update(t *testing.T) {
	ctx := context.Background()
	existing := func() *entities.Asset {
		return &entities.Asset{
			ID: 5, CitizenID: 1, Type: entities.AssetTypeAgriculturalLand, Valuation: "10",
			AgriculturalLand: &entities.AgriculturalLand{ID: 9, AssetID: 5, Year: 2023, Season: "Rabi", CropType: "Wheat"},
		}
	}

	t.Run("keeps land when none is sent", func(t *testing.T) {
		uc, _, assets, _ := newAssetUsecaseForTest()
		assets.On("GetByID", ctx, uint(5)).Return(existing(), nil).Once()
		assets.On("Update", ctx, mock.MatchedBy(func(a *entities.Asset) bool {
			return a.Valuation == "11" && a.AgriculturalLand != nil && a.AgriculturalLand.ID == 9
		})).Return(nil).Once()

		_, err := uc.Update(ctx, employeeRavi, 5, &entities.UpdateAssetInput{Type: "agricultural_land", Valuation: "11"})
		require.NoError(t, err)
		assets.AssertExpectations(t)
	})

	t.Run("replaces land detail in place", func(t *testing.T) {
		uc, _, assets, _ := newAssetUsecaseForTest()
		assets.On("GetByID", ctx, uint(5)).Return(existing(), nil).Once()
		assets.On("Update", ctx, mock.MatchedBy(func(a *entities.Asset) bool {
			return a.AgriculturalLand.ID == 9 && a.AgriculturalLand.Year == 2024
		})).Return(nil).Once()

		_, err := uc.Update(ctx, employeeRavi, 5, &entities.UpdateAssetInput{
			Type: "agricultural_land", Valuation: "11",
			AgriculturalLand: &entities.AgriculturalLandInput{Year: 2024, Season: "Kharif", CropType: "Paddy"},
		})
		require.NoError(t, err)
	})

	t.Run("switching type drops land", func(t *testing.T) {
		uc, _, assets, _ := newAssetUsecaseForTest()
		assets.On("GetByID", ctx, uint(5)).Return(existing(), nil).Once()
		assets.On("Update", ctx, mock.MatchedBy(func(a *entities.Asset) bool {
			return a.Type == "Tractor" && a.AgriculturalLand == nil
		})).Return(nil).Once()

		asset, err := uc.Update(ctx, employeeRavi, 5, &entities.UpdateAssetInput{Type: "Tractor", Valuation: "3"})
		require.NoError(t, err)
		assert.Nil(t, asset.AgriculturalLand)
	})

	t.Run("missing asset", func(t *testing.T) {
		uc, _, assets, _ := newAssetUsecaseForTest()
		assets.On("GetByID", ctx, uint(404)).Return(nil, domainerrors.ErrNotFound).Once()

		_, err := uc.Update(ctx, employeeRavi, 404, &entities.UpdateAssetInput{Type: "House", Valuation: "1"})
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestAssetUsecase_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	uc, _, assets, profiles := newAssetUsecaseForTest()
	owned := []*entities.Asset{{ID: 5, CitizenID: 1}}

	assets.On("ListByCitizen", ctx, uint(1)).Return(owned, nil).Twice()
	got, err := uc.ListMine(ctx, citizenAlice)
	require.NoError(t, err)
	assert.Equal(t, owned, got)

	profiles.On("GetCitizenByUsername", ctx, "alice").Return(&entities.Citizen{ID: 1}, nil).Once()
	got, err = uc.ListForCitizen(ctx, employeeRavi, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	profiles.On("GetCitizenByUsername", ctx, "alice").Return(&entities.Citizen{ID: 1}, nil).Once()
	_, err = uc.ListForCitizen(ctx, citizenBob, "alice")
	requireStatus(t, err, http.StatusForbidden)

	assets.On("GetByID", ctx, uint(5)).Return(owned[0], nil).Twice()
	assets.On("Delete", ctx, uint(5)).Return(nil).Once()
	require.NoError(t, uc.Delete(ctx, employeeRavi, 5))
	requireStatus(t, uc.Delete(ctx, citizenAlice, 5), http.StatusForbidden)
}
