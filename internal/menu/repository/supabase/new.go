package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"voice-ordering/internal/menu/repository"
	"voice-ordering/pkg/log"
)

const (
	tableDinners   = "dinners"
	tableStyles    = "styles"
	tableMenuItems = "menu_items"
)

type implRepository struct {
	client *supabase.Client
	l      log.Logger
}

// Config holds Supabase project credentials.
type Config struct {
	URL string
	Key string
}

// New creates a Supabase-backed catalog Repository.
func New(cfg Config, l log.Logger) (repository.Repository, error) {
	if cfg.URL == "" || cfg.Key == "" {
		return nil, fmt.Errorf("menu/repository/supabase: url and key are required")
	}

	client, err := supabase.NewClient(cfg.URL, cfg.Key, nil)
	if err != nil {
		return nil, fmt.Errorf("menu/repository/supabase: failed to create client: %w", err)
	}

	return &implRepository{client: client, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("menu/repository/supabase.%s", method)
}
