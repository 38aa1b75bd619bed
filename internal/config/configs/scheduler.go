package configs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler configures the periodic jobs. Schedules use the standard
// five-field cron syntax and are evaluated in Timezone.
type Scheduler struct {
	Enabled  bool   `env:"ENABLED" envDefault:"true"`
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`

	// DailyReset runs at midnight every day.
	DailyReset string `env:"DAILY_RESET" envDefault:"0 0 * * *"`
	// MonthlyReset runs at midnight on the first of every month.
	MonthlyReset string `env:"MONTHLY_RESET" envDefault:"0 0 1 * *"`
	// StatusCheck runs at the top of every hour.
	StatusCheck string `env:"STATUS_CHECK" envDefault:"0 * * * *"`
}

// Location resolves Timezone.
func (c Scheduler) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks the timezone and every schedule.
func (c Scheduler) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	for name, spec := range map[string]string{
		"daily reset":   c.DailyReset,
		"monthly reset": c.MonthlyReset,
		"status check":  c.StatusCheck,
	} {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("scheduler %s spec %q: %w", name, spec, err)
		}
	}
	return nil
}
