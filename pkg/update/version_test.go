package update

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"1.2.3", Version{1, 2, 3}},
		{"v1.2.3", Version{1, 2, 3}},
		{"v0.2.5", Version{0, 2, 5}},
		{"2.0", Version{2, 0, 0}},
		{"v1.2", Version{1, 2, 0}},
		{"v10.20.30", Version{10, 20, 30}},
		{"release-3.4.5-final", Version{3, 4, 5}},
		{"v0.2.5-rc1", Version{0, 2, 5}},
		{"1.0.0+build123", Version{1, 0, 0}},
		{"1.2.3.4", Version{1, 2, 3}},
		{"tool 2.7 (build 9.1.4)", Version{2, 7, 0}},
		{"007.010.000", Version{7, 10, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseVersionInvalid(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"dev",
		"v",
		"1",
		"v1",
		"vx.y.z",
		"not-a-version",
		"invalid-version",
		"abc.def.ghi",
		"1.",
		".5",
		"99999999999999999999.0.0",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			if err == nil {
				t.Fatalf("ParseVersion(%q) expected error, got nil", input)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ParseVersion(%q) error = %T, want *FormatError", input, err)
			}
			if !errors.Is(err, ErrInvalidVersion) {
				t.Fatalf("ParseVersion(%q) error %v does not match ErrInvalidVersion", input, err)
			}
			if KindOf(err) != KindFormat {
				t.Fatalf("KindOf = %q, want %q", KindOf(err), KindFormat)
			}
		})
	}
}

func TestParseVersionRoundTrip(t *testing.T) {
	for major := uint64(0); major < 4; major++ {
		for minor := uint64(0); minor < 4; minor++ {
			for patch := uint64(0); patch < 4; patch++ {
				want := Version{major, minor, patch}
				for _, raw := range []string{
					fmt.Sprintf("%d.%d.%d", major, minor, patch),
					fmt.Sprintf("v%d.%d.%d", major, minor, patch),
				} {
					got, err := ParseVersion(raw)
					if err != nil {
						t.Fatalf("ParseVersion(%q): %v", raw, err)
					}
					if got != want {
						t.Fatalf("ParseVersion(%q) = %+v, want %+v", raw, got, want)
					}
				}
				if patch == 0 {
					raw := fmt.Sprintf("%d.%d", major, minor)
					got, err := ParseVersion(raw)
					if err != nil || got != want {
						t.Fatalf("ParseVersion(%q) = %+v, %v; want %+v", raw, got, err, want)
					}
				}
			}
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"0.2.5", "0.2.5", 0},
		{"1.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},

		{"0.2.4", "0.2.5", -1},
		{"0.2.5", "0.3.0", -1},
		{"0.2.5", "1.0.0", -1},
		{"1.0", "1.0.1", -1},
		{"1.9.9", "1.10.0", -1},
		{"3.11.2", "3.11.3", -1},

		{"0.2.5", "0.2.4", 1},
		{"2.0.0", "1.99.99", 1},
		{"1.1", "1.0.0", 1},
		{"999.0.0", "0.5.0", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a := MustParseVersion(tt.a)
			b := MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Fatalf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
			if a.Less(b) != (tt.want < 0) || a.Equal(b) != (tt.want == 0) || a.GreaterThan(b) != (tt.want > 0) {
				t.Fatalf("Less/Equal/GreaterThan disagree with Compare for %s vs %s", tt.a, tt.b)
			}
		})
	}
}

func TestVersionTotalOrder(t *testing.T) {
	var all []Version
	for _, x := range []uint64{0, 1, 2, 10} {
		for _, y := range []uint64{0, 1, 10} {
			for _, z := range []uint64{0, 3} {
				all = append(all, Version{x, y, z})
			}
		}
	}

	for _, a := range all {
		for _, b := range all {
			holds := 0
			if a.Less(b) {
				holds++
			}
			if a.Equal(b) {
				holds++
			}
			if a.GreaterThan(b) {
				holds++
			}
			if holds != 1 {
				t.Fatalf("%v vs %v: %d of <,=,> hold, want exactly 1", a, b, holds)
			}
			for _, c := range all {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Fatalf("ordering not transitive: %v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := MustParseVersion("v1.2").String(); got != "1.2.0" {
		t.Fatalf("String() = %q, want %q", got, "1.2.0")
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseVersion("nope")
}
