package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Interests is a set of free-form tags. It is stored as a native text[] on
// PostgreSQL and as the same array literal in a text column elsewhere.
type Interests []string

func (Interests) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func (i Interests) Value() (driver.Value, error) {
	if i == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(i).Value()
}

func (i *Interests) Scan(src interface{}) error {
	return (*pq.StringArray)(i).Scan(src)
}

// Profile holds the mutable display attributes of an Account.
type Profile struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	FirstName string    `gorm:"size:255;not null" json:"firstName"`
	LastName  string    `gorm:"size:255;not null" json:"lastName"`
	Sexe      string    `gorm:"size:50" json:"sexe"`
	Bio       string    `json:"bio"`
	Program   string    `gorm:"size:255" json:"program"`
	Level     string    `gorm:"size:100" json:"level"`
	Interests Interests `json:"interests"`
	IsTutor   bool      `gorm:"not null;default:false" json:"isTutor"`
	Campus    string    `gorm:"size:255" json:"campus"`
	PhotoURL  string    `gorm:"size:512" json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Interests == nil {
		p.Interests = Interests{}
	}
	return nil
}

// MergeInterests adds every entry of extra that is not already present,
// keeping the order of first appearance. Blank entries are skipped.
func (p *Profile) MergeInterests(extra []string) {
	seen := make(map[string]bool, len(p.Interests)+len(extra))
	merged := make(Interests, 0, len(p.Interests)+len(extra))
	for _, list := range [][]string{p.Interests, extra} {
		for _, interest := range list {
			if interest == "" || seen[interest] {
				continue
			}
			seen[interest] = true
			merged = append(merged, interest)
		}
	}
	p.Interests = merged
}
