package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `json:"start_date"`
	// LeadID is a weak reference to the owning lead user; existence is not
	// enforced at write time and deleting the user leaves it dangling.
	LeadID uint64 `gorm:"not null;index" json:"lead_id"`
}
