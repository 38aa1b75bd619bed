package main

import (
	"fmt"
	"strconv"
	"strings"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// parseCampaign parses NAME=START-END[,START-END...]. The last '=' splits
// the name from the windows.
func parseCampaign(s string) (port.CampaignDefinition, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return port.CampaignDefinition{}, fmt.Errorf("campaign %q: want NAME=START-END", s)
	}
	def := port.CampaignDefinition{Name: strings.TrimSpace(s[:i])}
	for _, w := range strings.Split(s[i+1:], ",") {
		startStr, endStr, ok := strings.Cut(strings.TrimSpace(w), "-")
		if !ok {
			return port.CampaignDefinition{}, fmt.Errorf("campaign %q: window %q: want START-END", s, w)
		}
		start, err := strconv.Atoi(strings.TrimSpace(startStr))
		if err != nil {
			return port.CampaignDefinition{}, fmt.Errorf("campaign %q: start hour %q", s, startStr)
		}
		end, err := strconv.Atoi(strings.TrimSpace(endStr))
		if err != nil {
			return port.CampaignDefinition{}, fmt.Errorf("campaign %q: end hour %q", s, endStr)
		}
		r, err := domain.NewHourRange(start, end)
		if err != nil {
			return port.CampaignDefinition{}, fmt.Errorf("campaign %q: %w", s, err)
		}
		def.Dayparting = append(def.Dayparting, r)
	}
	return def, nil
}
