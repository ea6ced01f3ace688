package model

import "time"

type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type MemberStatus string

const (
	MemberActive   MemberStatus = "ACTIVE"
	MemberInactive MemberStatus = "INACTIVE"
)

// Member is a registered member of the federation.
// Rut holds the normalized RUT ("12345678-K") and is the natural key.
// Token is the public verification handle; only an explicit regenerate changes it.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Rut        string       `gorm:"column:rut;type:VARCHAR2(20);not null;uniqueIndex:idx_member_rut"`
	RutDisplay string       `gorm:"column:rut_display;type:VARCHAR2(20);not null"`
	Name       string       `gorm:"column:name;type:VARCHAR2(200);not null"`
	Affiliate  string       `gorm:"column:affiliate;type:VARCHAR2(200)"`
	Gender     Gender       `gorm:"column:gender;type:VARCHAR2(10)"`
	Status     MemberStatus `gorm:"column:status;type:VARCHAR2(10);not null"`
	Token      string       `gorm:"column:token;type:VARCHAR2(64);not null;uniqueIndex:idx_member_token"`

	// Import provenance
	ImportSource string     `gorm:"column:import_source;type:VARCHAR2(255)"`
	ImportedAt   *time.Time `gorm:"column:imported_at"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates an ACTIVE member bound to the given verification token.
func NewMember(normalizedRut, rutDisplay, name, affiliate string, gender Gender, token string) *Member {
	return &Member{
		Rut:        normalizedRut,
		RutDisplay: rutDisplay,
		Name:       name,
		Affiliate:  affiliate,
		Gender:     gender,
		Status:     MemberActive,
		Token:      token,
	}
}

func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}

// Editable column set. rut and token are deliberately absent.
var MemberMutableColumns = []string{
	"name", "rut_display", "affiliate", "gender", "import_source", "imported_at", "updated_by",
}
