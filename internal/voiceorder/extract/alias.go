package extract

import (
	"strings"
	"unicode"
)

// Kind selects which catalog an alias points into.
type Kind string

const (
	KindDinner Kind = "dinner"
	KindStyle  Kind = "style"
)

// AliasTable maps localized or informal names to canonical catalog names.
// Keys compare case- and whitespace-insensitively. A table must not be
// modified once it is shared.
type AliasTable struct {
	entries map[Kind]map[string]string
}

// NewAliasTable builds a table from kind -> source name -> canonical name.
func NewAliasTable(entries map[Kind]map[string]string) *AliasTable {
	t := &AliasTable{entries: map[Kind]map[string]string{}}
	for kind, m := range entries {
		t.Add(kind, m)
	}
	return t
}

// DefaultAliasTable returns the built-in Korean display names.
func DefaultAliasTable() *AliasTable {
	return NewAliasTable(map[Kind]map[string]string{
		KindDinner: {
			"발렌타인 디너":   "Valentine Dinner",
			"프렌치 디너":    "French Dinner",
			"잉글리시 디너":   "English Dinner",
			"영국 디너":     "English Dinner",
			"샴페인 축제 디너": "Champagne Feast",
			"샴페인 디너":    "Champagne Feast",
		},
		KindStyle: {
			"심플 스타일":  "simple",
			"심플":      "simple",
			"그랜드 스타일": "grand",
			"그랜드":     "grand",
			"디럭스 스타일": "deluxe",
			"디럭스":     "deluxe",
		},
	})
}

// Add registers aliases for kind, overriding existing entries.
func (t *AliasTable) Add(kind Kind, aliases map[string]string) {
	m, ok := t.entries[kind]
	if !ok {
		m = map[string]string{}
		t.entries[kind] = m
	}
	for source, canonical := range aliases {
		key := aliasKey(source)
		canonical = strings.TrimSpace(canonical)
		if key == "" || canonical == "" {
			continue
		}
		m[key] = canonical
	}
}

// Canonical returns the canonical name for name, or name trimmed when no
// alias matches.
func (t *AliasTable) Canonical(kind Kind, name string) string {
	name = strings.TrimSpace(name)
	if t == nil {
		return name
	}
	if canonical, ok := t.entries[kind][aliasKey(name)]; ok {
		return canonical
	}
	return name
}

func aliasKey(s string) string {
	return strings.ToLower(stripSpace(s))
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
