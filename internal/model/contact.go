package model

import "time"

// Contact is an address-book entry. PhoneNumber is unique across contacts.
type Contact struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FirstName   string    `json:"firstName" gorm:"size:255;not null"`
	LastName    string    `json:"lastName" gorm:"size:255;not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"uniqueIndex;size:32;not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContactPatch carries the fields of a partial contact update. Empty fields are left unchanged.
type ContactPatch struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Apply merges the non-empty patch fields into c.
func (p ContactPatch) Apply(c *Contact) {
	if p.FirstName != "" {
		c.FirstName = p.FirstName
	}
	if p.LastName != "" {
		c.LastName = p.LastName
	}
	if p.PhoneNumber != "" {
		c.PhoneNumber = p.PhoneNumber
	}
}

// All returns every model managed by migrations.
func All() []interface{} {
	return []interface{}{&User{}, &Contact{}}
}
