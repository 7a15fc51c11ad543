package pagination

import "testing"

func TestDefaultSize(t *testing.T) {
	t.Parallel()
	cfg := SizeConfig{Default: 20, Max: 100}

	cases := []struct {
		in, want int
	}{
		{0, 20},
		{1, 1},
		{100, 100},
		{-5, -5},
		{500, 500},
	}
	for _, c := range cases {
		if got := DefaultSize(c.in, cfg); got != c.want {
			t.Fatalf("DefaultSize(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestDefaultPage(t *testing.T) {
	t.Parallel()
	if got := DefaultPage(0); got != 1 {
		t.Fatalf("DefaultPage(0) = %d, want 1", got)
	}
	if got := DefaultPage(7); got != 7 {
		t.Fatalf("DefaultPage(7) = %d, want 7", got)
	}
	if got := DefaultPage(-3); got != -3 {
		t.Fatalf("DefaultPage(-3) = %d, want -3", got)
	}
}

func TestValidSize(t *testing.T) {
	t.Parallel()
	cfg := SizeConfig{Default: 20, Max: 100}

	cases := []struct {
		in   int
		want bool
	}{
		{1, true},
		{100, true},
		{0, false},
		{-5, false},
		{101, false},
		{500, false},
	}
	for _, c := range cases {
		if got := ValidSize(c.in, cfg); got != c.want {
			t.Fatalf("ValidSize(%d) = %v, want %v", c.in, got, c.want)
		}
	}

	if !ValidSize(500, SizeConfig{Default: 20}) {
		t.Fatal("no max configured must accept any positive size")
	}
}

func TestValidPage(t *testing.T) {
	t.Parallel()
	if !ValidPage(1) || !ValidPage(42) {
		t.Fatal("positive pages must be valid")
	}
	if ValidPage(0) || ValidPage(-3) {
		t.Fatal("non-positive pages must be invalid")
	}
}
