package models

import "time"

// Participant represents an active chat identity.
// Name is unique; a second insert with the same name fails at the store.
type Participant struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	Name       string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	LastStatus int64  `gorm:"not null;index" json:"lastStatus"` // Unix milliseconds
}

// LastSeen returns LastStatus as a time.Time.
func (p Participant) LastSeen() time.Time {
	return time.UnixMilli(p.LastStatus)
}

// IsStale reports whether the participant has been silent for longer than threshold.
func (p Participant) IsStale(now time.Time, threshold time.Duration) bool {
	return now.Sub(p.LastSeen()).Truncate(time.Millisecond) > threshold
}
