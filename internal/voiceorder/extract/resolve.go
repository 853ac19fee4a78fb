package extract

import "strings"

// tier decides whether a catalog name matches the requested name.
type tier func(catalogName, target string) bool

func exactFold(catalogName, target string) bool {
	return strings.EqualFold(strings.TrimSpace(catalogName), strings.TrimSpace(target))
}

func compactFold(catalogName, target string) bool {
	return strings.EqualFold(stripSpace(catalogName), stripSpace(target))
}

func containsFold(catalogName, target string) bool {
	target = strings.ToLower(strings.TrimSpace(target))
	return target != "" && strings.Contains(strings.ToLower(catalogName), target)
}

var (
	dinnerTiers = []tier{exactFold, compactFold}
	styleTiers  = []tier{exactFold, compactFold, containsFold}
)

// resolve tries each tier against every candidate before moving to the next
// tier. The first candidate matched by the earliest tier wins.
func resolve[T any](candidates []T, name func(T) string, target string, tiers []tier) (T, bool) {
	var zero T
	if strings.TrimSpace(target) == "" {
		return zero, false
	}
	for _, match := range tiers {
		for _, c := range candidates {
			if match(name(c), target) {
				return c, true
			}
		}
	}
	return zero, false
}
