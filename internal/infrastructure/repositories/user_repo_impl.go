package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. A taken username yields ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Username:      user.Username,
		Name:          user.Name,
		PasswordHash:  user.PasswordHash,
		Email:         user.Email,
		ContactNumber: user.ContactNumber,
		Role:          string(user.Role),
		IsVerified:    user.IsVerified,
	}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUsername gets a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toUserEntity(&m), nil
}

// List lists users matching filter, newest first
func (r *UserRepository) List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int, error) {
	query := GetDB(ctx, r.db).Model(&models.User{})
	if filter.Verified.Valid {
		query = query.Where("is_verified = ?", filter.Verified.Bool)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", string(filter.Role))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.User
	q := query.Order("created_at DESC").Order("username ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserEntity(&rows[i]))
	}
	return users, int(total), nil
}

// SetVerified flips the verification flag
func (r *UserRepository) SetVerified(ctx context.Context, username string, verified bool) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{"is_verified": verified, "updated_at": time.Now()})
	return requireAffected(result)
}

// Delete removes the user row. Profile rows cascade at the database level.
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	return requireAffected(GetDB(ctx, r.db).Delete(&models.User{}, "username = ?", username))
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		Username:      m.Username,
		Name:          m.Name,
		PasswordHash:  m.PasswordHash,
		Email:         m.Email,
		ContactNumber: m.ContactNumber,
		Role:          entities.UserRole(m.Role),
		IsVerified:    m.IsVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ProfileRepository implements role profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateCitizen(ctx context.Context, citizen *entities.Citizen) error {
	m := &models.Citizen{
		Username:                 citizen.Username,
		DateOfBirth:              citizen.DateOfBirth.Time,
		DateOfDeath:              dateToNull(citizen.DateOfDeath),
		Gender:                   citizen.Gender,
		Address:                  citizen.Address,
		EducationalQualification: citizen.EducationalQualification,
		Occupation:               citizen.Occupation,
	}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	citizen.ID = m.ID
	return nil
}

func (r *ProfileRepository) CreateAdmin(ctx context.Context, admin *entities.Admin) error {
	m := &models.Admin{
		Username:    admin.Username,
		Gender:      admin.Gender,
		DateOfBirth: admin.DateOfBirth.Time,
		Address:     admin.Address,
	}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	admin.ID = m.ID
	return nil
}

func (r *ProfileRepository) CreateAgency(ctx context.Context, agency *entities.GovernmentAgency) error {
	m := &models.GovernmentAgency{Username: agency.Username, Role: agency.Role}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	agency.ID = m.ID
	return nil
}

func (r *ProfileRepository) CreateEmployee(ctx context.Context, employee *entities.PanchayatEmployee) error {
	m := &models.PanchayatEmployee{Username: employee.Username, Role: employee.Role}
	if err := GetDB(ctx, r.db).Omit(clause.Associations).Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	employee.ID = m.ID
	return nil
}

func (r *ProfileRepository) GetCitizenByID(ctx context.Context, id uint) (*entities.Citizen, error) {
	var m models.Citizen
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toCitizenEntity(&m), nil
}

func (r *ProfileRepository) GetCitizenByUsername(ctx context.Context, username string) (*entities.Citizen, error) {
	var m models.Citizen
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toCitizenEntity(&m), nil
}

func (r *ProfileRepository) GetAdminByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	var m models.Admin
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return &entities.Admin{
		ID:          m.ID,
		Username:    m.Username,
		Gender:      m.Gender,
		DateOfBirth: entities.NewDate(m.DateOfBirth),
		Address:     m.Address,
	}, nil
}

func (r *ProfileRepository) GetAgencyByUsername(ctx context.Context, username string) (*entities.GovernmentAgency, error) {
	var m models.GovernmentAgency
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return &entities.GovernmentAgency{ID: m.ID, Username: m.Username, Role: m.Role}, nil
}

func (r *ProfileRepository) GetAgencyByID(ctx context.Context, id uint) (*entities.GovernmentAgency, error) {
	var m models.GovernmentAgency
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return &entities.GovernmentAgency{ID: m.ID, Username: m.Username, Role: m.Role}, nil
}

func (r *ProfileRepository) GetEmployeeByUsername(ctx context.Context, username string) (*entities.PanchayatEmployee, error) {
	var m models.PanchayatEmployee
	if err := GetDB(ctx, r.db).Where("username = ?", username).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return &entities.PanchayatEmployee{ID: m.ID, Username: m.Username, Role: m.Role}, nil
}

// UpdateCitizen writes the mutable citizen fields. Username and date of
// birth are never changed here.
func (r *ProfileRepository) UpdateCitizen(ctx context.Context, citizen *entities.Citizen) error {
	result := GetDB(ctx, r.db).Model(&models.Citizen{}).
		Where("id = ?", citizen.ID).
		Updates(map[string]interface{}{
			"gender":                    citizen.Gender,
			"address":                   citizen.Address,
			"educational_qualification": citizen.EducationalQualification,
			"occupation":                citizen.Occupation,
			"date_of_death":             dateToNull(citizen.DateOfDeath),
		})
	return requireAffected(result)
}

// DeleteProfile removes the profile row of the given role for username.
// Removing a profile that does not exist is not an error.
func (r *ProfileRepository) DeleteProfile(ctx context.Context, role entities.UserRole, username string) error {
	var model interface{}
	switch role {
	case entities.RoleCitizen:
		model = &models.Citizen{}
	case entities.RoleAdmin:
		model = &models.Admin{}
	case entities.RoleGovernmentAgency:
		model = &models.GovernmentAgency{}
	case entities.RolePanchayatEmployee:
		model = &models.PanchayatEmployee{}
	default:
		return nil
	}
	return GetDB(ctx, r.db).Delete(model, "username = ?", username).Error
}

func toCitizenEntity(m *models.Citizen) *entities.Citizen {
	return &entities.Citizen{
		ID:                       m.ID,
		Username:                 m.Username,
		DateOfBirth:              entities.NewDate(m.DateOfBirth),
		DateOfDeath:              nullToDate(m.DateOfDeath),
		Gender:                   m.Gender,
		Address:                  m.Address,
		EducationalQualification: m.EducationalQualification,
		Occupation:               m.Occupation,
	}
}

// ActivityLogRepository implements audit trail operations
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository
func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, entry *entities.ActivityLog) error {
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}
	m := &models.ActivityLog{
		Time:         entry.Time,
		AffectedUser: entry.AffectedUser,
		Actor:        entry.Actor,
		Action:       entry.Action,
		OldValue:     entry.OldValue,
		NewValue:     entry.NewValue,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	return nil
}

func (r *ActivityLogRepository) ListByUser(ctx context.Context, username string, limit, offset int) ([]*entities.ActivityLog, int, error) {
	query := GetDB(ctx, r.db).Model(&models.ActivityLog{}).Where("affected_user = ?", username)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ActivityLog
	q := query.Order("time DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*entities.ActivityLog, 0, len(rows))
	for _, m := range rows {
		out = append(out, &entities.ActivityLog{
			ID:           m.ID,
			Time:         m.Time,
			AffectedUser: m.AffectedUser,
			Actor:        m.Actor,
			Action:       m.Action,
			OldValue:     m.OldValue,
			NewValue:     m.NewValue,
		})
	}
	return out, int(total), nil
}
