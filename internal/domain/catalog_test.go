package domain

import "testing"

func TestStandardCatalogShape(t *testing.T) {
	if got := len(Standard.AllCharacters()); got != 4 {
		t.Fatalf("characters = %d, want 4", got)
	}
	if got := len(AllBoosters(Standard)); got != 8 {
		t.Fatalf("boosters = %d, want 8", got)
	}

	seen := map[Move]bool{}
	for _, m := range AllMoves(Standard) {
		if seen[m] {
			t.Fatalf("move %s listed twice", m)
		}
		seen[m] = true
	}
	if len(seen) != 28 {
		t.Fatalf("moves = %d, want 28", len(seen))
	}
}

func TestMoveClasses(t *testing.T) {
	for _, m := range AllMoves(Standard) {
		if Standard.Destructive(m) && !Standard.SingleUse(m) {
			t.Errorf("%s is destructive but not single-use", m)
		}
	}
	if !Standard.SingleUse(Regenerate) || Standard.Destructive(Regenerate) {
		t.Error("Regenerate should be single-use only")
	}
}

func TestHeadstartAtMostOneSide(t *testing.T) {
	chars := Standard.AllCharacters()
	for _, a := range chars {
		for _, b := range chars {
			h, c := StandardTable.Headstart(a, b)
			if h > 1 || c > 1 || (h == 1 && c == 1) {
				t.Fatalf("Headstart(%s, %s) = (%d, %d)", a, b, h, c)
			}
			rh, rc := StandardTable.Headstart(b, a)
			if rh != c || rc != h {
				t.Fatalf("Headstart(%s, %s) not symmetric", a, b)
			}
		}
	}
	if h, c := StandardTable.Headstart(Ninja, Zombie); h != 1 || c != 0 {
		t.Fatalf("Ninja over Zombie: (%d, %d)", h, c)
	}
	if h, c := StandardTable.Headstart(Ninja, Samurai); h != 0 || c != 0 {
		t.Fatalf("Ninja vs Samurai: (%d, %d)", h, c)
	}
}

func TestPointsAreConsistent(t *testing.T) {
	moves := AllMoves(Standard)
	for _, a := range moves {
		for _, b := range moves {
			x, y := StandardTable.Points(a, b)
			if x > 1 || y > 1 {
				t.Fatalf("Points(%s, %s) = (%d, %d)", a, b, x, y)
			}
			rx, ry := StandardTable.Points(b, a)
			if rx != y || ry != x {
				t.Fatalf("Points(%s, %s) not mirrored by Points(%s, %s)", a, b, b, a)
			}
		}
		if x, y := StandardTable.Points(a, a); x != 0 || y != 0 {
			t.Fatalf("mirror match %s scored (%d, %d)", a, x, y)
		}
	}
}

func TestSmashBeatsShadowFireballInBaseTable(t *testing.T) {
	if x, y := StandardTable.Points(Smash, ShadowFireball); x != 1 || y != 0 {
		t.Fatalf("Points(Smash, ShadowFireball) = (%d, %d)", x, y)
	}
}

func TestVictoryTerm(t *testing.T) {
	want := map[uint8]string{0: "", 1: "Clinch", 2: "Hypnotization", 3: "Obliteration", 4: "Annihilation", 5: "Wipeout", 6: ""}
	for margin, term := range want {
		if got := VictoryTerm(margin); got != term {
			t.Errorf("VictoryTerm(%d) = %q, want %q", margin, got, term)
		}
	}
}
