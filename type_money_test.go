package networth

import "testing"

func TestMoney_Compact(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{AUD(280600), "$281k"},
		{AUD(425250), "$425k"},
		{AUD(-425000), "-$425k"},
		{AUD(1250000), "$1.25m"},
		{AUD(999999), "$1m"},
		{AUD(1000000), "$1m"},
		{AUD(500), "$0.5k"},
		{AUD(0), "$0"},
		{AUD(895954.5), "$896k"},
	}
	for _, tc := range testCases {
		if got := tc.m.Compact(); got != tc.want {
			t.Errorf("Compact(%v) = %q, want %q", tc.m.Decimal(), got, tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	if got, want := AUD(720000).String(), "$720,000.00"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoney_Clamp(t *testing.T) {
	lo, hi := AUD(0), AUD(100)
	for _, tc := range []struct{ in, want Money }{
		{AUD(-1), AUD(0)},
		{AUD(50), AUD(50)},
		{AUD(101), AUD(100)},
	} {
		if got := tc.in.Clamp(lo, hi); !got.Equal(tc.want) {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in.Decimal(), got.Decimal(), tc.want.Decimal())
		}
	}
}

func TestParsePercent(t *testing.T) {
	testCases := []struct {
		in   string
		want Factor
	}{
		{"40%", F(0.4)},
		{"40", F(0.4)},
		{" 12.5 % ", F(0.125)},
		{"150%", F(1)},
		{"-5", F(0)},
	}
	for _, tc := range testCases {
		got, err := ParsePercent(tc.in)
		if err != nil {
			t.Errorf("ParsePercent(%q) error: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParsePercent(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParsePercent("lots"); err == nil {
		t.Error("ParsePercent(lots) expected an error")
	}
}

func TestFactor_Clamp(t *testing.T) {
	if got := F(1.5).Clamp(); !got.Equal(F(1)) {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := F(-1).Clamp(); !got.Equal(F(0)) {
		t.Errorf("Clamp(-1) = %v", got)
	}
	if got := F(0.3).Clamp(); !got.Equal(F(0.3)) {
		t.Errorf("Clamp(0.3) = %v", got)
	}
}

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		in   string
		want Money
	}{
		{"720000", AUD(720000)},
		{"-425,000", AUD(-425000)},
		{" 2400.50 ", AUD(2400.5)},
		{"1_000", AUD(1000)},
	}
	for _, tc := range testCases {
		got, err := ParseMoney(tc.in, "AUD")
		if err != nil {
			t.Fatalf("ParseMoney(%q) error: %v", tc.in, err)
		}
		if !got.Equal(tc.want) || got.Currency() != "AUD" {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseMoney("lots", "AUD"); err == nil {
		t.Error("ParseMoney(\"lots\") expected an error")
	}
}
