package networth

import "testing"

func TestRepayments_Monthly(t *testing.T) {
	testCases := []struct {
		amount    float64
		frequency Frequency
		want      Money
	}{
		{2400, Fortnightly, AUD(5200)},
		{2100, Fortnightly, AUD(4550)},
		{1000, Fortnightly, AUD(2167)}, // 2166.67
		{500, Weekly, AUD(2167)},       // 2166.67
		{450, Weekly, AUD(1950)},
		{6150, Monthly, AUD(6150)},
		{6150.4, Monthly, AUD(6150.4)},
	}
	for _, tc := range testCases {
		r := Repayments{Amount: AUD(tc.amount), Frequency: tc.frequency}
		if got := r.Monthly(); !got.Equal(tc.want) {
			t.Errorf("Monthly(%v %s) = %v, want %v", tc.amount, tc.frequency, got.Decimal(), tc.want.Decimal())
		}
	}
}

func TestProject_Scenario(t *testing.T) {
	m := Mortgage{
		Balance:    AUD(-300000),
		Repayments: Repayments{Amount: AUD(2036), Frequency: Monthly},
	}
	scenarios := Project(m, AUD(0), []Factor{F(1.5)})
	if len(scenarios) != 1 {
		t.Fatalf("len(Project()) = %d, want 1", len(scenarios))
	}
	s := scenarios[0]
	checks := []struct {
		name      string
		got, want Money
	}{
		{"ScaledLoan", s.ScaledLoan, AUD(-450000)},
		{"HouseValue", s.HouseValue, AUD(450000)},
		{"StampDuty", s.StampDuty, AUD(24750)},
		{"NetHouseValue", s.NetHouseValue, AUD(425250)},
		{"MonthlyRepayment", s.MonthlyRepayment, AUD(3054)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got.Decimal(), c.want.Decimal())
		}
	}
}

func TestProject_LadderOrder(t *testing.T) {
	m := Mortgage{Balance: AUD(-100000), Repayments: Repayments{Amount: AUD(1000), Frequency: Monthly}}
	scenarios := Project(m, AUD(50000), DefaultLadder)
	if len(scenarios) != len(DefaultLadder) {
		t.Fatalf("len(Project()) = %d, want %d", len(scenarios), len(DefaultLadder))
	}
	for i, s := range scenarios {
		if !s.Multiplier.Equal(DefaultLadder[i]) {
			t.Errorf("scenario %d multiplier = %v, want %v", i, s.Multiplier, DefaultLadder[i])
		}
		if i > 0 && !s.NetHouseValue.GreaterThan(scenarios[i-1].NetHouseValue) {
			t.Errorf("scenario %d is not more affordable than scenario %d", i, i-1)
		}
	}
}

func TestAfford_Upsizing(t *testing.T) {
	e, _ := FindExample("AUD", "Upsizing")
	a, ok := Afford(e.Assets, DefaultLadder)
	if !ok {
		t.Fatal("Afford() = false, want true")
	}
	if a.Mortgage.House.Slug != "current-house" {
		t.Errorf("Mortgage.House = %q, want current-house", a.Mortgage.House.Slug)
	}
	if !a.MonthlyRepayment.Equal(AUD(5200)) {
		t.Errorf("MonthlyRepayment = %v, want 5200", a.MonthlyRepayment.Decimal())
	}
	if !a.NetPosition.Equal(AUD(310600)) {
		t.Errorf("NetPosition = %v, want 310600", a.NetPosition.Decimal())
	}
	// x1.5: house = 637500 + 310600 = 948100, duty = 52145.5
	s := a.Scenarios[2]
	if !s.NetHouseValue.Equal(AUD(895954.5)) || !s.MonthlyRepayment.Equal(AUD(7800)) {
		t.Errorf("x1.5 = %v %v p/m, want 895954.5 7800 p/m", s.NetHouseValue.Decimal(), s.MonthlyRepayment.Decimal())
	}
}

func TestAfford_InsufficientData(t *testing.T) {
	noRepayments := house("Current House", 500000)
	noRepayments.Loan = AUD(-100000)

	testCases := []struct {
		name   string
		assets Assets
	}{
		{"empty", nil},
		{"no house", Assets{misc("Savings", 60000, AllLiquid{})}},
		{"house without loan", Assets{house("Current House", 500000)}},
		{"house without repayments", Assets{noRepayments}},
		{"loan securing nothing", Assets{Loan{Info: Info{Label: "Loan", Slug: "loan", Amount: AUD(-1000)}}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if a, ok := Afford(tc.assets, DefaultLadder); ok || len(a.Scenarios) != 0 {
				t.Errorf("Afford() = %v, %v, want no scenarios", a.Scenarios, ok)
			}
		})
	}
}

func TestFindMortgage_SecuredLoan(t *testing.T) {
	h := house("Current House", 720000)
	h.Repayments = Repayments{Amount: AUD(2400), Frequency: Fortnightly}
	assets := Assets{
		misc("Savings", 1000, AllLiquid{}),
		Loan{Info: Info{Label: "Mortgage", Slug: "mortgage", Amount: AUD(-425000)}, Secures: h.Slug},
		h,
	}
	m, ok := FindMortgage(assets)
	if !ok {
		t.Fatal("FindMortgage() = false, want true")
	}
	if !m.Balance.Equal(AUD(-425000)) || m.House.Slug != h.Slug {
		t.Errorf("FindMortgage() = %v on %q", m.Balance.Decimal(), m.House.Slug)
	}
}
