package member

import (
	"context"
	"strings"

	"github.com/cokeke26/fenats/internal/model"
	"github.com/cokeke26/fenats/internal/shared/rut"
	"gorm.io/gorm"
)

type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// ListFilter narrows List. Query matches name or RUT substrings.
type ListFilter struct {
	Query  string
	Status model.MemberStatus
	Offset int
	Limit  int
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

// Update writes the mutable columns only; rut and token are never touched.
func (m *MemberRepository) Update(ctx context.Context, db *gorm.DB, member *model.Member) error {
	columns := append([]string{"updated_at"}, model.MemberMutableColumns...)
	return db.WithContext(ctx).
		Model(member).
		Select(columns).
		Updates(member).Error
}

func (m *MemberRepository) UpdateStatus(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).
		Model(member).
		Select("status", "updated_at", "updated_by").
		Updates(member).Error
}

func (m *MemberRepository) UpdateToken(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).
		Model(member).
		Select("token", "updated_at", "updated_by").
		Updates(member).Error
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByRut(ctx context.Context, db *gorm.DB, normalizedRut string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("rut = ?", normalizedRut).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByToken(ctx context.Context, db *gorm.DB, token string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("token = ?", token).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]model.Member, int64, error) {
	query := db.WithContext(ctx).Model(&model.Member{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		nameLike := "%" + strings.ToUpper(q) + "%"
		if rut.DigitsOnly(q) != "" {
			// RUTs are stored without dots, so "10.017" must search "10017".
			query = query.Where("UPPER(name) LIKE ? OR REPLACE(rut, '-', '') LIKE ?", nameLike, "%"+rut.Clean(q)+"%")
		} else {
			query = query.Where("UPPER(name) LIKE ?", nameLike)
		}
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []model.Member
	err := query.
		Order("name ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}
