package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("nope"); got.Name != Greenback.Name {
		t.Errorf("ByName(unknown) = %s, want %s", got.Name, Greenback.Name)
	}
	if got := ByName("ink"); got.Name != "ink" {
		t.Errorf("ByName(ink) = %s", got.Name)
	}
}

func TestNextWraps(t *testing.T) {
	last := All[len(All)-1].Name
	if got := Next(last); got != All[0].Name {
		t.Errorf("Next(%s) = %s, want %s", last, got, All[0].Name)
	}
	if got := Next("unknown"); got != All[0].Name {
		t.Errorf("Next(unknown) = %s", got)
	}
}

func TestValid(t *testing.T) {
	for _, n := range Names() {
		if !Valid(n) {
			t.Errorf("Valid(%s) = false", n)
		}
	}
	if Valid("") {
		t.Error("empty name should be invalid")
	}
}

func TestLedgerRolesDistinct(t *testing.T) {
	for _, th := range All {
		roles := []string{string(th.Income), string(th.Spent), string(th.Left), string(th.Saved), string(th.ToGo)}
		seen := map[string]bool{}
		for _, r := range roles {
			if r == "" {
				t.Errorf("%s: empty ledger role", th.Name)
			}
			if seen[r] {
				t.Errorf("%s: ledger role color %s used twice", th.Name, r)
			}
			seen[r] = true
		}
	}
}
