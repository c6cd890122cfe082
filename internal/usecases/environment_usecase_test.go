package usecases_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
	"panchayat.backend/internal/usecases"
)

func TestEnvironmentUsecase(t *testing.T) {
	ctx := context.Background()
	repo := new(MockEnvironmentalDataRepository)
	uc := usecases.NewEnvironmentUsecase(repo)
	input := &entities.EnvironmentalDataInput{Year: 2024, AQI: null.Float64From(82), ODF: null.Float64From(1)}

	t.Run("create", func(t *testing.T) {
		repo.On("Create", ctx, mock.MatchedBy(func(d *entities.EnvironmentalData) bool {
			return d.Year == 2024 && d.AQI.Float64 == 82 && !d.ForestCover.Valid
		})).Return(nil).Once()
		data, err := uc.Create(ctx, employeeRavi, input)
		require.NoError(t, err)
		assert.Equal(t, 2024, data.Year)
	})

	t.Run("duplicate year", func(t *testing.T) {
		repo.On("Create", ctx, mock.Anything).Return(domainerrors.ErrAlreadyExists).Once()
		_, err := uc.Create(ctx, employeeRavi, input)
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("missing year", func(t *testing.T) {
		_, err := uc.Create(ctx, employeeRavi, &entities.EnvironmentalDataInput{})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("update keeps the path year", func(t *testing.T) {
		repo.On("Update", ctx, mock.MatchedBy(func(d *entities.EnvironmentalData) bool { return d.Year == 2023 })).Return(nil).Once()
		data, err := uc.Update(ctx, employeeRavi, 2023, input)
		require.NoError(t, err)
		assert.Equal(t, 2023, data.Year)
	})

	t.Run("get and delete missing year", func(t *testing.T) {
		repo.On("GetByYear", ctx, 1999).Return(nil, domainerrors.ErrNotFound).Once()
		_, err := uc.Get(ctx, employeeRavi, 1999)
		appErr := requireStatus(t, err, http.StatusNotFound)
		assert.Equal(t, "no environmental data for year 1999", appErr.Message)

		repo.On("Delete", ctx, 1999).Return(domainerrors.ErrNotFound).Once()
		requireStatus(t, uc.Delete(ctx, employeeRavi, 1999), http.StatusNotFound)
	})

	t.Run("only employees", func(t *testing.T) {
		_, err := uc.List(ctx, citizenAlice)
		requireStatus(t, err, http.StatusForbidden)
		_, err = uc.List(ctx, agencyWater)
		requireStatus(t, err, http.StatusForbidden)
	})
}
