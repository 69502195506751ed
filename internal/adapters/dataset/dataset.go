// Package dataset reads the operational data a report is evaluated over.
package dataset

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/okian/opsboard/internal/domain/model"
)

//go:embed sample.yaml
var sample []byte

// Load reads a YAML or JSON dataset from path.
func Load(ctx context.Context, path string) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := Decode(f)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset, validates it and ranks its revenue lines.
// Unknown keys are rejected.
func Decode(r io.Reader) (model.Dataset, error) {
	var ds model.Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Dataset{}, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return model.Dataset{}, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if err := Validate(ds); err != nil {
		return model.Dataset{}, err
	}
	ds.Revenue = RankByRevenue(ds.Revenue)
	return ds, nil
}

// Sample returns the embedded sample dataset.
func Sample() model.Dataset {
	ds, err := Decode(bytes.NewReader(sample))
	if err != nil {
		panic(fmt.Sprintf("embedded sample dataset: %v", err))
	}
	return ds
}

// SampleYAML returns the embedded sample as written, comments included.
func SampleYAML() []byte {
	return bytes.Clone(sample)
}

// Validate checks that every record is identified and named, and that ids
// are unique within their section.
func Validate(ds model.Dataset) error {
	checks := []struct {
		section string
		n       int
		key     func(i int) (id, name string)
	}{
		{"waste", len(ds.Waste), func(i int) (string, string) { return ds.Waste[i].ID, ds.Waste[i].Name }},
		{"inventory", len(ds.Inventory), func(i int) (string, string) { return ds.Inventory[i].ID, ds.Inventory[i].Name }},
		{"menu", len(ds.Menu), func(i int) (string, string) { return ds.Menu[i].ID, ds.Menu[i].Name }},
		{"stores", len(ds.Stores), func(i int) (string, string) { return ds.Stores[i].ID, ds.Stores[i].Name }},
		{"revenue", len(ds.Revenue), func(i int) (string, string) { return ds.Revenue[i].ID, ds.Revenue[i].Name }},
		{"tech_impact", len(ds.TechImpact), func(i int) (string, string) {
			return ds.TechImpact[i].Metric, ds.TechImpact[i].Metric
		}},
	}
	for _, c := range checks {
		seen := make(map[string]struct{}, c.n)
		for i := 0; i < c.n; i++ {
			id, name := c.key(i)
			if id == "" {
				return fmt.Errorf("%w: %s[%d]: missing id", ErrInvalidDataset, c.section, i)
			}
			if name == "" {
				return fmt.Errorf("%w: %s[%d] %q: missing name", ErrInvalidDataset, c.section, i, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: %s: %q", ErrDuplicateID, c.section, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// RankByRevenue returns a copy of lines sorted by revenue, highest first.
// Equal revenues keep their input order.
func RankByRevenue(lines []model.RevenueLine) []model.RevenueLine {
	if lines == nil {
		return nil
	}
	out := make([]model.RevenueLine, len(lines))
	copy(out, lines)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}
