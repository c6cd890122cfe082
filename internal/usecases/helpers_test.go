package usecases_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"panchayat.backend/internal/domain/access"
	"panchayat.backend/internal/domain/entities"
	domainerrors "panchayat.backend/internal/domain/errors"
)

var (
	citizenAlice = access.Actor{Username: "alice", Role: entities.RoleCitizen, ProfileID: 1}
	citizenBob   = access.Actor{Username: "bob", Role: entities.RoleCitizen, ProfileID: 2}
	adminRoot    = access.Actor{Username: "root", Role: entities.RoleAdmin, ProfileID: 1}
	agencyWater  = access.Actor{Username: "waterboard", Role: entities.RoleGovernmentAgency, ProfileID: 7}
	employeeRavi = access.Actor{Username: "ravi", Role: entities.RolePanchayatEmployee, ProfileID: 3}
)

// requireStatus asserts err is an AppError carrying status.
func requireStatus(t *testing.T, err error, status int) *domainerrors.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, status, appErr.Status, appErr.Message)
	return appErr
}
