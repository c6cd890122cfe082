package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func seedUser(t *testing.T, db *gorm.DB, username string, role entities.UserRole) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:      username,
		Name:          "Name " + username,
		PasswordHash:  "hash",
		ContactNumber: "9876543210",
		Role:          role,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedCitizen(t *testing.T, db *gorm.DB, username string) *entities.Citizen {
	t.Helper()
	seedUser(t, db, username, entities.RoleCitizen)
	c := &entities.Citizen{
		Username:                 username,
		DateOfBirth:              entities.NewDate(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)),
		Gender:                   "Female",
		Address:                  "Ward 3",
		EducationalQualification: "Graduate",
		Occupation:               "Farmer",
	}
	require.NoError(t, NewProfileRepository(db).CreateCitizen(context.Background(), c))
	return c
}

func seedAgency(t *testing.T, db *gorm.DB, username string) *entities.GovernmentAgency {
	t.Helper()
	seedUser(t, db, username, entities.RoleGovernmentAgency)
	a := &entities.GovernmentAgency{Username: username, Role: "Health"}
	require.NoError(t, NewProfileRepository(db).CreateAgency(context.Background(), a))
	return a
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
