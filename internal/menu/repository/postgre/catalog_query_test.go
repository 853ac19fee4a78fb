package postgre

import (
	"strings"
	"testing"

	repo "voice-ordering/internal/menu/repository"
)

func TestBuildListDinnersQuery(t *testing.T) {
	r := &implRepository{}

	all := r.buildListDinnersQuery(repo.ListDinnersOptions{})
	if !strings.Contains(all, "WHERE 1=1") {
		t.Errorf("expected unfiltered query, got %s", all)
	}

	available := r.buildListDinnersQuery(repo.ListDinnersOptions{OnlyAvailable: true})
	if !strings.Contains(available, "WHERE COALESCE(is_available, true)") {
		t.Errorf("expected availability filter, got %s", available)
	}
	if !strings.HasSuffix(available, "ORDER BY name ASC") {
		t.Errorf("expected name ordering, got %s", available)
	}
}
