package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/model"
	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/database"
	"github.com/cokeke26/fenats/internal/shared/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	db              *gorm.DB
	adminRepository *AdminRepository
}

func NewAdminService(db *gorm.DB, adminRepository *AdminRepository) *AdminService {
	return &AdminService{
		db:              db,
		adminRepository: adminRepository,
	}
}

func (s *AdminService) Me(ctx context.Context, actor sharedContext.Actor) (*AdminResponse, error) {
	admin, err := s.adminRepository.FindByID(ctx, s.db, actor.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("adminID=%d: %w", actor.AdminID, ErrAdminNotFound)
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return toResponse(admin), nil
}

// Create registers another admin. Only a SUPERADMIN may do it.
func (s *AdminService) Create(ctx context.Context, actor sharedContext.Actor, req CreateAdminRequest) (*AdminResponse, error) {
	log := logger.FromContext(ctx)
	var created *model.Admin

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		current, err := s.adminRepository.FindByID(ctx, tx, actor.AdminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("adminID=%d: %w", actor.AdminID, ErrForbidden)
			}
			return fmt.Errorf("find admin: %w", err)
		}
		if !current.IsSuperAdmin() {
			log.Warn("admin creation denied", "admin_id", actor.AdminID)
			return fmt.Errorf("adminID=%d role=%s: %w", actor.AdminID, current.Role, ErrForbidden)
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		exists, err := s.adminRepository.IsExist(ctx, tx, email)
		if err != nil {
			return fmt.Errorf("check admin existence: %w", err)
		}
		if exists {
			return fmt.Errorf("email=%s: %w", logger.MaskEmail(email), ErrAdminAlreadyExists)
		}

		role := req.Role
		if role == "" {
			role = model.RoleAdmin
		}

		admin, err := newAdmin(strings.TrimSpace(req.Name), email, req.Password, role)
		if err != nil {
			return err
		}
		admin.CreatedBy = actor.Ref()
		admin.UpdatedBy = actor.Ref()

		if err := s.adminRepository.Create(ctx, tx, admin); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		created = admin
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("admin created", "email", logger.MaskEmail(created.Email), "role", created.Role, "by", actor.AdminID)
	return toResponse(created), nil
}

// SeedSuperAdmin creates the first SUPERADMIN from configuration when the
// admin table is empty. It reports whether an admin was created.
func (s *AdminService) SeedSuperAdmin(ctx context.Context, seed config.AdminSeedConfig) (bool, error) {
	if seed.Email == "" || seed.Password == "" {
		return false, nil
	}

	created := false
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		count, err := s.adminRepository.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if count > 0 {
			return nil
		}

		admin, err := newAdmin(seed.Name, strings.ToLower(strings.TrimSpace(seed.Email)), seed.Password, model.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if err := s.adminRepository.Create(ctx, tx, admin); err != nil {
			return fmt.Errorf("create seed admin: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		logger.FromContext(ctx).Info("superadmin seeded", "email", logger.MaskEmail(seed.Email))
	}
	return created, nil
}

func newAdmin(name, email, password string, role model.AdminRole) (*model.Admin, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return model.NewAdmin(name, email, string(hashed), role), nil
}
