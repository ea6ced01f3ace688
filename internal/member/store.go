package member

import (
	"context"
	"errors"

	"github.com/cokeke26/fenats/internal/model"
	"gorm.io/gorm"
)

// Store binds MemberRepository to a database handle so importers can use it
// without knowing about gorm.
type Store struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewStore(db *gorm.DB, memberRepository *MemberRepository) *Store {
	return &Store{
		db:               db,
		memberRepository: memberRepository,
	}
}

// FindByRut returns (nil, nil) when the RUT is not registered.
func (s *Store) FindByRut(ctx context.Context, normalizedRut string) (*model.Member, error) {
	member, err := s.memberRepository.FindByRut(ctx, s.db, normalizedRut)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Store) Create(ctx context.Context, member *model.Member) error {
	return s.memberRepository.Create(ctx, s.db, member)
}

func (s *Store) Update(ctx context.Context, member *model.Member) error {
	return s.memberRepository.Update(ctx, s.db, member)
}
