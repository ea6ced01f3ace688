package model

type AdminRole string

const (
	RoleAdmin      AdminRole = "ADMIN"
	RoleSuperAdmin AdminRole = "SUPERADMIN"
)

// Admin is an operator allowed to manage the member registry.
type Admin struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Email    string    `gorm:"column:email;type:VARCHAR2(255);not null;uniqueIndex:idx_admin_email"`
	Name     string    `gorm:"column:name;type:VARCHAR2(100);not null"`
	Password string    `gorm:"column:password;type:VARCHAR2(60);not null"` // bcrypt hash
	Role     AdminRole `gorm:"column:role;type:VARCHAR2(20);not null"`

	BaseEntity
}

// TableName specifies the table name for Admin
func (*Admin) TableName() string {
	return "admin"
}

// NewAdmin expects an already hashed password.
func NewAdmin(name, email, hashedPassword string, role AdminRole) *Admin {
	return &Admin{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}
}

func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}
