package networth

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeAssets(t *testing.T) {
	e, _ := FindExample("AUD", "Upsizing")
	var b bytes.Buffer
	if err := EncodeAssets(&b, e.Assets); err != nil {
		t.Fatalf("EncodeAssets() error: %v", err)
	}
	want := `{"type":"house","label":"Current House","slug":"current-house","amount":720000,"loan":-425000,"repayments":{"amount":2400,"frequency":"fortnightly"},"canSell":true}
{"type":"offset","label":"Offset","slug":"offset","amount":35000,"liquidity":{"type":"amount-spendable","amount":25000}}
{"type":"shares","label":"VAS","slug":"vas","amount":8000,"liquidity":{"type":"amount-spendable","amount":5000}}
`
	if got := b.String(); got != want {
		t.Errorf("EncodeAssets() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeAssets_Examples(t *testing.T) {
	for _, e := range Examples("AUD") {
		t.Run(e.Label, func(t *testing.T) {
			var b bytes.Buffer
			if err := EncodeAssets(&b, e.Assets); err != nil {
				t.Fatalf("EncodeAssets() error: %v", err)
			}
			got, err := DecodeAssets(&b, "AUD")
			if err != nil {
				t.Fatalf("DecodeAssets() error: %v", err)
			}
			if !got.Equal(e.Assets) {
				t.Errorf("DecodeAssets() = %v, want %v", got, e.Assets)
			}
		})
	}
}

func TestDecodeAssets_Policies(t *testing.T) {
	input := `
{"type":"misc","label":"Legacy","slug":"legacy","amount":60000,"liquidity":55000}
{"type":"misc","label":"Legacy all","slug":"legacy-all","amount":1000,"liquidity":"all"}
{"type":"shares","label":"Percent","slug":"percent","amount":1000,"liquidity":{"type":"percent","percent":0.25}}
{"type":"offset","label":"None","slug":"none","amount":1000,"liquidity":{"type":"none"}}
{"type":"misc","label":"Kept","slug":"kept","amount":60000,"liquidity":{"type":"amount-remaining","amount":5000}}
{"type":"misc","label":"Implicit","slug":"implicit","amount":10}
{"type":"house","label":"Home","slug":"home","amount":500000,"loan":0,"repayments":{"amount":0,"frequency":"monthly"},"canSell":true,"liquidity":{"type":"all"}}
{"type":"loan","label":"Mortgage","slug":"mortgage","amount":-300000,"secures":"home"}
`
	assets, err := DecodeAssets(strings.NewReader(input), "AUD")
	if err != nil {
		t.Fatalf("DecodeAssets() error: %v", err)
	}

	want := []struct {
		slug   string
		kind   LiquidityType
		liquid Money
	}{
		{"legacy", LiquidSpendable, AUD(55000)},
		{"legacy-all", LiquidAll, AUD(1000)},
		{"percent", LiquidPercent, AUD(250)},
		{"none", LiquidNone, AUD(0)},
		{"kept", LiquidRemaining, AUD(55000)},
		{"implicit", "", AUD(10)},
		{"home", LiquidAll, AUD(490000)},
	}
	for _, w := range want {
		a, ok := assets.Find(w.slug)
		if !ok {
			t.Errorf("asset %q not decoded", w.slug)
			continue
		}
		l, _ := LiquidityOf(a)
		var kind LiquidityType
		if l != nil {
			kind = l.Kind()
		}
		if kind != w.kind {
			t.Errorf("%s: liquidity kind = %q, want %q", w.slug, kind, w.kind)
		}
		if got := Liquid(a); !got.Equal(w.liquid) {
			t.Errorf("%s: Liquid() = %v, want %v", w.slug, got.Decimal(), w.liquid.Decimal())
		}
		if got := a.Details().Amount.Currency(); got != "AUD" {
			t.Errorf("%s: currency = %q, want AUD", w.slug, got)
		}
	}

	loan, _ := assets.Find("mortgage")
	if l, ok := loan.(Loan); !ok || l.Secures != "home" {
		t.Errorf("decoded loan = %#v", loan)
	}
	if got, want := NetPosition(assets), AUD(55000+1000+250+0+55000+10+490000-300000); !got.Equal(want) {
		t.Errorf("NetPosition() = %v, want %v", got.Decimal(), want.Decimal())
	}
}

func TestDecodeAssets_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "unknown liquidity",
			input:   `{"type":"misc","label":"Bonds","slug":"bonds","amount":10,"liquidity":{"type":"bonds"}}`,
			wantErr: ErrUnknownLiquidity,
		},
		{
			name:    "unknown liquidity string",
			input:   `{"type":"misc","label":"Bonds","slug":"bonds","amount":10,"liquidity":"some"}`,
			wantErr: ErrUnknownLiquidity,
		},
		{
			name:    "positive loan",
			input:   `{"type":"loan","label":"Loan","slug":"loan","amount":10}`,
			wantErr: ErrInvalidAsset,
		},
		{
			name: "duplicated slug",
			input: `{"type":"misc","label":"A","slug":"a","amount":10}
{"type":"misc","label":"B","slug":"a","amount":10}`,
			wantErr: ErrInvalidAsset,
		},
		{
			name:    "unknown frequency",
			input:   `{"type":"house","label":"Home","slug":"home","amount":1,"loan":0,"repayments":{"amount":1,"frequency":"daily"},"canSell":true}`,
			wantErr: ErrInvalidAsset,
		},
		{
			name:    "loan securing a missing house",
			input:   `{"type":"loan","label":"Loan","slug":"loan","amount":-10,"secures":"home"}`,
			wantErr: ErrInvalidAsset,
		},
		{
			name: "loan securing a house with a loan",
			input: `{"type":"house","label":"Home","slug":"home","amount":720000,"loan":-425000,"repayments":{"amount":0,"frequency":"monthly"},"canSell":true}
{"type":"loan","label":"Mortgage","slug":"mortgage","amount":-425000,"secures":"home"}`,
			wantErr: ErrInvalidAsset,
		},
		{
			name:  "unknown type",
			input: `{"type":"boat","label":"Boat","slug":"boat","amount":10}`,
		},
		{
			name:  "not json",
			input: `type: misc`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeAssets(strings.NewReader(tc.input), "AUD")
			if err == nil {
				t.Fatal("DecodeAssets() expected an error, got nil")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("DecodeAssets() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
