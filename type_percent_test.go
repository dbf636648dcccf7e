package folio

import "testing"

func TestPercent_Equal(t *testing.T) {
	if !Percent(33.33333).Equal(Percent(100.0 / 3)) {
		t.Error("values within tolerance should be equal")
	}
	if Percent(25).Equal(Percent(25.01)) {
		t.Error("values outside tolerance should differ")
	}
}

func TestPercent_String(t *testing.T) {
	testCases := []struct {
		p          Percent
		want       string
		wantSigned string
	}{
		{25, "25.00%", "+25.00%"},
		{-3.5, "-3.50%", "-3.50%"},
		{0, "0.00%", "-"},
		{0.0001, "0.00%", "-"},   // rounds to zero
		{-0.0001, "-0.00%", "-"}, // rounds to negative zero
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.want)
		}
		if got := tc.p.SignedString(); got != tc.wantSigned {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.wantSigned)
		}
	}
}
