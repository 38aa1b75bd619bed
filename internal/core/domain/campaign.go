package domain

import (
	"slices"
	"strings"
	"time"
)

// Campaign represents an advertising campaign owned by a single brand. Its
// activation flag is the only field that changes after creation and is
// driven by the budget and campaign services.
type Campaign struct {
	Name       string
	Dayparting Dayparting
	active     bool
}

// NewCampaign creates an inactive campaign with the given dayparting
// windows. At least one valid window is required.
func NewCampaign(name string, windows ...HourRange) (*Campaign, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	dp := Dayparting(slices.Clone(windows))
	if err := dp.Validate(); err != nil {
		return nil, err
	}
	return &Campaign{Name: name, Dayparting: dp}, nil
}

// IsActive reports whether the campaign is currently running.
func (c *Campaign) IsActive() bool { return c.active }

// Activate marks the campaign as running.
func (c *Campaign) Activate() { c.active = true }

// Deactivate marks the campaign as stopped. Calling it on an inactive
// campaign is a no-op.
func (c *Campaign) Deactivate() { c.active = false }

// IsWithinDayparting reports whether t's hour falls inside one of the
// campaign's windows.
func (c *Campaign) IsWithinDayparting(t time.Time) bool {
	return c.Dayparting.Contains(t)
}
