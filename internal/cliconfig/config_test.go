package cliconfig

import (
	"errors"
	"testing"

	"github.com/veltmail/mbexport/internal/domain"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Category = "user"
	cfg.DatabaseURL = "postgres://directory"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "all category", mutate: func(c *Config) { c.Category = "all" }, wantErr: false},
		{name: "missing category", mutate: func(c *Config) { c.Category = "" }, wantErr: true},
		{name: "unknown category", mutate: func(c *Config) { c.Category = "linked" }, wantErr: true},
		{name: "zero batch size", mutate: func(c *Config) { c.BatchSize = 0 }, wantErr: true},
		{name: "negative batch size", mutate: func(c *Config) { c.BatchSize = -1 }, wantErr: true},
		{name: "missing output dir", mutate: func(c *Config) { c.OutputDir = "" }, wantErr: true},
		{name: "missing database url", mutate: func(c *Config) { c.DatabaseURL = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestCategoriesAllExpandsInFixedOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Category = "ALL"

	cats, err := cfg.Categories()
	if err != nil {
		t.Fatalf("Categories() error: %v", err)
	}
	if len(cats) != len(domain.AllCategories) {
		t.Fatalf("Categories() len = %d, want %d", len(cats), len(domain.AllCategories))
	}
	for i, c := range domain.AllCategories {
		if cats[i] != c {
			t.Errorf("Categories()[%d] = %s, want %s", i, cats[i], c)
		}
	}
}

func TestCategoriesSingle(t *testing.T) {
	cfg := validConfig()
	cfg.Category = "PublicFolder"

	cats, err := cfg.Categories()
	if err != nil {
		t.Fatalf("Categories() error: %v", err)
	}
	if len(cats) != 1 || cats[0] != domain.CategoryPublicFolder {
		t.Errorf("Categories() = %v", cats)
	}
}

func TestCategoriesUnknown(t *testing.T) {
	cfg := validConfig()
	cfg.Category = "linked"

	if _, err := cfg.Categories(); !errors.Is(err, domain.ErrUnknownCategory) {
		t.Errorf("Categories() error = %v, want ErrUnknownCategory", err)
	}
}
