package repositories

import (
	"context"

	"gorm.io/gorm"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/models"
)

// FamilyRepository implements family and membership data operations
type FamilyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new family repository
func NewFamilyRepository(db *gorm.DB) *FamilyRepository {
	return &FamilyRepository{db: db}
}

// Create inserts the family and seeds the head as a Self member.
func (r *FamilyRepository) Create(ctx context.Context, family *entities.Family) error {
	db := GetDB(ctx, r.db)
	m := &models.Family{HeadCitizenID: family.HeadCitizenID}
	if err := db.Omit("Head", "Members").Create(m).Error; err != nil {
		return translateWriteError(err)
	}

	self := &models.FamilyMember{
		FamilyID:        m.ID,
		MemberCitizenID: family.HeadCitizenID,
		Relationship:    entities.RelationshipSelf,
	}
	if err := db.Omit("Member").Create(self).Error; err != nil {
		return translateWriteError(err)
	}

	family.ID = m.ID
	family.CreatedAt = m.CreatedAt
	family.Members = []entities.FamilyMember{{
		ID:              self.ID,
		FamilyID:        m.ID,
		HeadCitizenID:   family.HeadCitizenID,
		MemberCitizenID: family.HeadCitizenID,
		Username:        family.HeadUsername,
		Relationship:    entities.RelationshipSelf,
	}}
	return nil
}

func (r *FamilyRepository) GetByID(ctx context.Context, id uint) (*entities.Family, error) {
	var m models.Family
	if err := r.withMembers(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toFamilyEntity(&m), nil
}

func (r *FamilyRepository) ListHeadedBy(ctx context.Context, citizenID uint) ([]*entities.Family, error) {
	var rows []models.Family
	if err := r.withMembers(ctx).Where("head_citizen_id = ?", citizenID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toFamilyEntities(rows), nil
}

// ListForMember returns every family the citizen belongs to, including the
// ones they head.
func (r *FamilyRepository) ListForMember(ctx context.Context, citizenID uint) ([]*entities.Family, error) {
	db := GetDB(ctx, r.db)
	memberOf := db.Model(&models.FamilyMember{}).Select("family_id").Where("member_citizen_id = ?", citizenID)

	var rows []models.Family
	if err := r.withMembers(ctx).Where("id IN (?)", memberOf).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toFamilyEntities(rows), nil
}

func (r *FamilyRepository) GetMember(ctx context.Context, familyID, citizenID uint) (*entities.FamilyMember, error) {
	db := GetDB(ctx, r.db)
	var m models.FamilyMember
	err := db.Preload("Member").
		Where("family_id = ? AND member_citizen_id = ?", familyID, citizenID).
		First(&m).Error
	if err != nil {
		return nil, translateReadError(err)
	}
	var family models.Family
	if err := db.Select("id", "head_citizen_id").Where("id = ?", familyID).First(&family).Error; err != nil {
		return nil, translateReadError(err)
	}
	return toMemberEntity(&m, family.HeadCitizenID), nil
}

// AddMember inserts a membership row. An existing (family, member) pair
// yields ErrAlreadyExists.
func (r *FamilyRepository) AddMember(ctx context.Context, member *entities.FamilyMember) error {
	m := &models.FamilyMember{
		FamilyID:        member.FamilyID,
		MemberCitizenID: member.MemberCitizenID,
		Relationship:    member.Relationship,
	}
	if err := GetDB(ctx, r.db).Omit("Member").Create(m).Error; err != nil {
		return translateWriteError(err)
	}
	member.ID = m.ID
	return nil
}

func (r *FamilyRepository) RemoveMember(ctx context.Context, familyID, citizenID uint) error {
	return requireAffected(GetDB(ctx, r.db).
		Where("family_id = ? AND member_citizen_id = ?", familyID, citizenID).
		Delete(&models.FamilyMember{}))
}

// Delete removes the family and every membership row sharing its id.
func (r *FamilyRepository) Delete(ctx context.Context, id uint) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("family_id = ?", id).Delete(&models.FamilyMember{}).Error; err != nil {
		return err
	}
	return requireAffected(db.Delete(&models.Family{}, "id = ?", id))
}

// DeleteForCitizen removes the citizen's memberships and every family they head.
func (r *FamilyRepository) DeleteForCitizen(ctx context.Context, citizenID uint) error {
	db := GetDB(ctx, r.db)
	headed := db.Model(&models.Family{}).Select("id").Where("head_citizen_id = ?", citizenID)
	if err := db.Where("family_id IN (?)", headed).Delete(&models.FamilyMember{}).Error; err != nil {
		return err
	}
	if err := db.Where("head_citizen_id = ?", citizenID).Delete(&models.Family{}).Error; err != nil {
		return err
	}
	return db.Where("member_citizen_id = ?", citizenID).Delete(&models.FamilyMember{}).Error
}

func (r *FamilyRepository) withMembers(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Members.Member")
}

func toFamilyEntities(rows []models.Family) []*entities.Family {
	out := make([]*entities.Family, 0, len(rows))
	for i := range rows {
		out = append(out, toFamilyEntity(&rows[i]))
	}
	return out
}

func toFamilyEntity(m *models.Family) *entities.Family {
	f := &entities.Family{
		ID:            m.ID,
		HeadCitizenID: m.HeadCitizenID,
		CreatedAt:     m.CreatedAt,
		Members:       make([]entities.FamilyMember, 0, len(m.Members)),
	}
	for i := range m.Members {
		member := toMemberEntity(&m.Members[i], m.HeadCitizenID)
		if member.MemberCitizenID == m.HeadCitizenID {
			f.HeadUsername = member.Username
		}
		f.Members = append(f.Members, *member)
	}
	return f
}

func toMemberEntity(m *models.FamilyMember, headCitizenID uint) *entities.FamilyMember {
	return &entities.FamilyMember{
		ID:              m.ID,
		FamilyID:        m.FamilyID,
		HeadCitizenID:   headCitizenID,
		MemberCitizenID: m.MemberCitizenID,
		Username:        m.Member.Username,
		Relationship:    m.Relationship,
	}
}
