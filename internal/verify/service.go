package verify

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/cokeke26/fenats/internal/member"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/rut"
	"gorm.io/gorm"
)

// Tokens are 32 lowercase hex characters; anything else is rejected
// before touching the database.
var tokenPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

type VerifyService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
}

func NewVerifyService(db *gorm.DB, memberRepository *member.MemberRepository) *VerifyService {
	return &VerifyService{
		db:               db,
		memberRepository: memberRepository,
	}
}

func (s *VerifyService) Verify(ctx context.Context, tok string) (*VerificationResponse, error) {
	if !tokenPattern.MatchString(tok) {
		return nil, fmt.Errorf("malformed token: %w", ErrUnknownToken)
	}

	found, err := s.memberRepository.FindByToken(ctx, s.db, tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("token not registered: %w", ErrUnknownToken)
		}
		return nil, fmt.Errorf("find member by token: %w", err)
	}

	logger.FromContext(ctx).Info("credential verified", "member_id", found.ID, "status", found.Status)

	return &VerificationResponse{
		Valid:     found.IsActive(),
		Status:    found.Status,
		Name:      logger.MaskName(found.Name),
		Rut:       rut.Mask(found.Rut),
		Affiliate: found.Affiliate,
	}, nil
}
