package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cokeke26/fenats/internal/model"
	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/database"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"github.com/cokeke26/fenats/internal/shared/rut"
	"github.com/cokeke26/fenats/internal/shared/token"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	defaultQRSize   = 256
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
	newToken         token.Generator
	verifyURL        func(token string) string
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository, newToken token.Generator, verifyURL func(string) string) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
		newToken:         newToken,
		verifyURL:        verifyURL,
	}
}

// Save registers a member by RUT, or updates the one already registered.
// The returned bool is true when a new member was created.
func (s *MemberService) Save(ctx context.Context, actor sharedContext.Actor, req SaveMemberRequest) (*MemberResponse, bool, error) {
	normalized := rut.Normalize(req.Rut)
	if normalized == "" {
		return nil, false, fmt.Errorf("rut=%q: %w", req.Rut, ErrInvalidRut)
	}

	var (
		saved   *model.Member
		created bool
	)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		existing, err := s.memberRepository.FindByRut(ctx, tx, normalized)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find member by rut: %w", err)
		}

		if existing != nil {
			existing.Name = strings.TrimSpace(req.Name)
			existing.RutDisplay = rut.Format(normalized)
			existing.Affiliate = strings.TrimSpace(req.Affiliate)
			existing.Gender = req.Gender
			existing.UpdatedBy = actor.Ref()

			if err := s.memberRepository.Update(ctx, tx, existing); err != nil {
				return fmt.Errorf("update member: %w", err)
			}
			saved = existing
			return nil
		}

		tok, err := s.newToken()
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}

		member := model.NewMember(normalized, rut.Format(normalized), strings.TrimSpace(req.Name), strings.TrimSpace(req.Affiliate), req.Gender, tok)
		member.CreatedBy = actor.Ref()
		member.UpdatedBy = actor.Ref()

		if err := s.memberRepository.Create(ctx, tx, member); err != nil {
			return fmt.Errorf("create member: %w", err)
		}
		saved, created = member, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	logger.FromContext(ctx).Info("member saved",
		"member_id", saved.ID,
		"rut", rut.Mask(saved.Rut),
		"created", created,
		"admin_id", actor.AdminID)

	return s.toResponse(saved), created, nil
}

func (s *MemberService) Get(ctx context.Context, id uint32) (*MemberResponse, error) {
	member, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(member), nil
}

// Lookup finds a member by RUT in any accepted spelling.
func (s *MemberService) Lookup(ctx context.Context, rawRut string) (*MemberResponse, error) {
	normalized := rut.Normalize(rawRut)
	if normalized == "" {
		return nil, fmt.Errorf("rut=%q: %w", rawRut, ErrInvalidRut)
	}

	member, err := s.memberRepository.FindByRut(ctx, s.db, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("rut=%s: %w", rut.Mask(normalized), ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member by rut: %w", err)
	}
	return s.toResponse(member), nil
}

func (s *MemberService) List(ctx context.Context, query ListMembersQuery) (*ListMembersResponse, error) {
	page, size := query.Page, query.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	members, total, err := s.memberRepository.List(ctx, s.db, ListFilter{
		Query:  query.Q,
		Status: query.Status,
		Offset: (page - 1) * size,
		Limit:  size,
	})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	items := make([]MemberResponse, 0, len(members))
	for i := range members {
		items = append(items, *s.toResponse(&members[i]))
	}

	return &ListMembersResponse{Items: items, Total: total, Page: page, Size: size}, nil
}

func (s *MemberService) Update(ctx context.Context, actor sharedContext.Actor, id uint32, req UpdateMemberRequest) (*MemberResponse, error) {
	var updated *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		member.Name = strings.TrimSpace(req.Name)
		member.Affiliate = strings.TrimSpace(req.Affiliate)
		member.Gender = req.Gender
		member.UpdatedBy = actor.Ref()

		if err := s.memberRepository.Update(ctx, tx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		updated = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(updated), nil
}

func (s *MemberService) SetStatus(ctx context.Context, actor sharedContext.Actor, id uint32, status model.MemberStatus) (*MemberResponse, error) {
	var updated *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		member.Status = status
		member.UpdatedBy = actor.Ref()

		if err := s.memberRepository.UpdateStatus(ctx, tx, member); err != nil {
			return fmt.Errorf("update member status: %w", err)
		}
		updated = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("member status changed",
		"member_id", id,
		"status", status,
		"admin_id", actor.AdminID)

	return s.toResponse(updated), nil
}

// RegenerateToken replaces the verification token. QR codes printed
// with the old token stop verifying.
func (s *MemberService) RegenerateToken(ctx context.Context, actor sharedContext.Actor, id uint32) (*MemberResponse, error) {
	var updated *model.Member

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.find(ctx, tx, id)
		if err != nil {
			return err
		}

		tok, err := s.newToken()
		if err != nil {
			return fmt.Errorf("generate token: %w", err)
		}
		member.Token = tok
		member.UpdatedBy = actor.Ref()

		if err := s.memberRepository.UpdateToken(ctx, tx, member); err != nil {
			return fmt.Errorf("update member token: %w", err)
		}
		updated = member
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("member token regenerated", "member_id", id, "admin_id", actor.AdminID)

	return s.toResponse(updated), nil
}

// QRCode renders the member's verification URL as a PNG.
func (s *MemberService) QRCode(ctx context.Context, id uint32, size int) ([]byte, error) {
	member, err := s.find(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}

	png, err := qrcode.Encode(s.verifyURL(member.Token), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func (s *MemberService) find(ctx context.Context, db *gorm.DB, id uint32) (*model.Member, error) {
	member, err := s.memberRepository.FindByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("memberID=%d: %w", id, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return member, nil
}

func (s *MemberService) toResponse(m *model.Member) *MemberResponse {
	return &MemberResponse{
		ID:           m.ID,
		Rut:          m.Rut,
		RutDisplay:   m.RutDisplay,
		Name:         m.Name,
		Affiliate:    m.Affiliate,
		Gender:       m.Gender,
		Status:       m.Status,
		Token:        m.Token,
		VerifyURL:    s.verifyURL(m.Token),
		ImportSource: m.ImportSource,
		ImportedAt:   m.ImportedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
