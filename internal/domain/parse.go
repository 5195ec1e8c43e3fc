package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// normalizeName folds case and drops spaces, hyphens and underscores so that
// "ninja sword", "Ninja-Sword" and "NINJASWORD" all compare equal.
func normalizeName(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return r
	}, name)
	return folder.String(stripped)
}

// ParseCharacter resolves a typed name against the catalog.
func ParseCharacter(cat Catalog, name string) (Character, bool) {
	key := normalizeName(name)
	for _, c := range cat.AllCharacters() {
		if normalizeName(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// ParseBooster resolves a typed name against every booster in the catalog.
func ParseBooster(cat Catalog, name string) (Booster, bool) {
	key := normalizeName(name)
	for _, b := range AllBoosters(cat) {
		if normalizeName(string(b)) == key {
			return b, true
		}
	}
	return "", false
}

// ParseMove resolves a typed name against every move in the catalog.
func ParseMove(cat Catalog, name string) (Move, bool) {
	key := normalizeName(name)
	for _, m := range AllMoves(cat) {
		if normalizeName(string(m)) == key {
			return m, true
		}
	}
	return "", false
}
