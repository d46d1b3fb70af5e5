package catalog

import "testing"

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"default", 0, 0},
		{"unlocked", 3, 3},
		{"locked falls back", 4, 0},
		{"locked last falls back", 5, 0},
		{"negative falls back", -1, 0},
		{"out of range falls back", 99, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, c := Select(tc.index)
			if got != tc.want {
				t.Errorf("Select(%d) = %d, expected %d", tc.index, got, tc.want)
			}
			if !c.Unlocked {
				t.Errorf("Select(%d) returned locked character %q", tc.index, c.Name)
			}
		})
	}
}

func TestCatalogContents(t *testing.T) {
	if Len() != 6 {
		t.Fatalf("Len = %d, expected 6", Len())
	}

	unlocked := 0
	for i, c := range All() {
		if c.Speed < 0 || c.Speed > StatMax || c.Jump < 0 || c.Jump > StatMax {
			t.Errorf("%s: stats out of range: speed %d jump %d", c.Name, c.Speed, c.Jump)
		}
		if c.Glyph == 0 {
			t.Errorf("%s: missing glyph", c.Name)
		}
		if c.Unlocked {
			unlocked++
		}
		if Selectable(i) != c.Unlocked {
			t.Errorf("Selectable(%d) disagrees with Unlocked", i)
		}
	}
	if unlocked != 4 {
		t.Errorf("unlocked = %d, expected 4", unlocked)
	}

	first, _ := Get(0)
	if !first.Unlocked {
		t.Error("the default character must be unlocked")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	if c, _ := Get(0); c.Name == "changed" {
		t.Error("All should not expose the backing slice")
	}
}

func TestRarityString(t *testing.T) {
	tests := []struct {
		r    Rarity
		want string
	}{
		{Common, "Common"},
		{Rare, "Rare"},
		{Epic, "Epic"},
		{Legendary, "Legendary"},
	}
	for _, tc := range tests {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("%d.String() = %q, expected %q", tc.r, got, tc.want)
		}
	}
}
