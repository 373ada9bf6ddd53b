package rates

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		amount int64
		factor float64
		want   float64
	}{
		{1000, 0.0027, 2.70},
		{1000, 0.0025, 2.50},
		{1000, 0.0021, 2.10},
		{500, 0.0027, 1.35},
		{500, 0.0025, 1.25},
		{500, 0.0021, 1.05},
		{0, 0.0027, 0},
		{1000, 1.0, 1000},
		{333, 0.003, 1.00},
	}

	for _, tt := range tests {
		if got := Convert(tt.amount, tt.factor); got != tt.want {
			t.Errorf("Convert(%d, %v) = %v, want %v", tt.amount, tt.factor, got, tt.want)
		}
	}
}

func TestFactorFallsBackToIdentity(t *testing.T) {
	snapshot := map[string]float64{"USD": 0.0027}

	if got := Factor(snapshot, "USD"); got != 0.0027 {
		t.Errorf("Factor(USD) = %v, want 0.0027", got)
	}
	if got := Factor(snapshot, "EUR"); got != 1.0 {
		t.Errorf("Factor(EUR) = %v, want identity fallback 1.0", got)
	}
	if got := Factor(nil, "GBP"); got != 1.0 {
		t.Errorf("Factor on nil snapshot = %v, want 1.0", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{2.7, "2.70"},
		{1000, "1000.00"},
		{0, "0.00"},
		{1.05, "1.05"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.v); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestConvertWithMissingCodeDisplaysOriginal(t *testing.T) {
	// The identity fallback makes a missing code render the unconverted
	// amount. Observed behavior, preserved on purpose.
	snapshot := map[string]float64{}
	got := FormatAmount(Convert(1000, Factor(snapshot, "USD")))
	if got != "1000.00" {
		t.Errorf("fallback display = %q, want %q", got, "1000.00")
	}
}
