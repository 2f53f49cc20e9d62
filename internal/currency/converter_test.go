package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func TestBGNToEUR(t *testing.T) {
	cases := []struct {
		name string
		bgn  string
		want string
	}{
		// 195583 BGN is exactly 100000 EUR at the legal rate.
		{"identity", "195583", "100000"},
		{"round down", "100.00", "51.13"}, // 51.1285... -> 51.13
		{"small amount", "1.00", "0.51"},  // 0.51129... -> 0.51
		{"zero", "0", "0"},
		// 19.56807915 / 1.95583 is exactly 10.005: the midpoint must
		// round away from zero, not to the nearest even cent.
		{"exact midpoint", "19.56807915", "10.01"},
		{"negative midpoint", "-19.56807915", "-10.01"},
	}

	c := Default()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.BGNToEUR(decimal.RequireFromString(tc.bgn))
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("BGNToEUR(%s) = %s, want %s", tc.bgn, got, tc.want)
			}
		})
	}
}

func TestNewWithAlternateRate(t *testing.T) {
	c := New(decimal.NewFromInt(2))
	got := c.BGNToEUR(decimal.RequireFromString("10"))
	if !got.Equal(decimal.NewFromInt(5)) {
		t.Errorf("BGNToEUR(10) at rate 2 = %s, want 5", got)
	}
	if !c.Rate().Equal(decimal.NewFromInt(2)) {
		t.Errorf("Rate() = %s, want 2", c.Rate())
	}
}

// Multiplying exact EUR cents by the rate and converting back must
// reproduce the cents exactly: the division is exact, so no rounding noise
// can creep in.
func TestProperty_ConversionRoundTrip(t *testing.T) {
	c := Default()
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(-1_000_000_00, 1_000_000_00).Draw(t, "cents")
		eur := decimal.New(cents, -2)
		bgn := eur.Mul(BGNPerEUR)

		got := c.BGNToEUR(bgn)
		if !got.Equal(eur) {
			t.Fatalf("round trip failed: %s EUR -> %s BGN -> %s EUR", eur, bgn, got)
		}
	})
}

// Every conversion result is already cent-rounded: rounding it again must
// be a no-op.
func TestProperty_ResultIsCentRounded(t *testing.T) {
	c := Default()
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(-10_000_000, 10_000_000).Draw(t, "units")
		exp := rapid.Int32Range(-6, 0).Draw(t, "exp")
		bgn := decimal.New(units, exp)

		got := c.BGNToEUR(bgn)
		if !got.Equal(got.Round(2)) {
			t.Fatalf("BGNToEUR(%s) = %s is not cent-rounded", bgn, got)
		}
	})
}
