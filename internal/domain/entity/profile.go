package entity

import "time"

// Profile binds a location and a daily delivery time to a user
type Profile struct {
	Key        string
	OwnerKey   string
	State      string
	Name       string
	Location   string // canonical name resolved by the weather provider, empty when unset
	TimezoneID string
	// ScheduledMinute is the UTC minute-of-day of delivery, nil when unset
	ScheduledMinute *int
	LastDeliveredAt *time.Time
	CreatedAt       time.Time
}

// HasLocation reports whether a location has been set for the profile
func (p *Profile) HasLocation() bool {
	return p.Location != ""
}

// DeliveredWithin reports whether the last delivery happened no longer than window before now
func (p *Profile) DeliveredWithin(now time.Time, window time.Duration) bool {
	if p.LastDeliveredAt == nil {
		return false
	}
	return now.Sub(*p.LastDeliveredAt) <= window
}

// ProfileUpdate is a partial update; nil fields are left untouched.
// An empty Location or TimezoneID clears the stored value.
type ProfileUpdate struct {
	Name            *string
	State           *string
	Location        *string
	TimezoneID      *string
	ScheduledMinute *int
	LastDeliveredAt *time.Time
}

// IsEmpty reports whether the update changes nothing
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.State == nil && u.Location == nil &&
		u.TimezoneID == nil && u.ScheduledMinute == nil && u.LastDeliveredAt == nil
}

// ProfileFilter is an exact-match conjunction; zero fields match anything
type ProfileFilter struct {
	OwnerKey        string
	State           string
	Name            string
	ScheduledMinute *int
}

// ProfileInfo is the summary shown to a user for their default profile
type ProfileInfo struct {
	Location string
	Time     string
	// UsedDefaultZone is set when the time was rendered in UTC for lack of a zone
	UsedDefaultZone bool
}
