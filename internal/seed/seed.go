// Package seed loads brand definitions from a YAML file and initializes the
// ones that do not exist yet.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// File is the seed document:
//
//	brands:
//	  - name: Test Brand
//	    monthly_budget: 3000
//	    daily_budget: 100
//	    campaigns:
//	      - name: Day Campaign
//	        dayparting: [{start: 9, end: 17}]
type File struct {
	Brands []port.BrandDefinition `yaml:"brands"`
}

// Decode parses a seed document. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode seed: %w", err)
	}
	return f, nil
}

// LoadFile reads and parses the seed file at path.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()
	return Decode(fh)
}

// Apply initializes every brand of f that svc does not know yet and returns
// how many were created. Brands restored from storage are left untouched.
func Apply(ctx context.Context, svc port.BudgetUseCase, f File, logger *slog.Logger) (int, error) {
	created := 0
	for _, def := range f.Brands {
		_, err := svc.GetBrand(ctx, def.Name)
		if err == nil {
			logger.Debug("seed brand already present", slog.String("brand", def.Name))
			continue
		}
		if !errors.Is(err, domain.ErrBrandNotFound) {
			return created, err
		}
		if _, err = svc.InitializeBrand(ctx, def); err != nil {
			return created, fmt.Errorf("seed brand %q: %w", def.Name, err)
		}
		created++
	}
	logger.Info("seed applied", slog.Int("brands", len(f.Brands)), slog.Int("created", created))
	return created, nil
}
