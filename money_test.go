package fundbench

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value float64
		cur   string
		want  string
	}{
		{12.5, "INR", "₹12.50"},
		{0, "INR", "₹0.00"},
		{104.25, "EUR", "€104.25"},
	}
	for _, tt := range tests {
		if got := M(tt.value, tt.cur).String(); got != tt.want {
			t.Errorf("M(%v, %q).String() = %q, want %q", tt.value, tt.cur, got, tt.want)
		}
	}
}

func TestMoneyEqual(t *testing.T) {
	if !M(10, "INR").Equal(M(10, "INR")) {
		t.Error("equal amounts in the same currency must be Equal")
	}
	if M(10, "INR").Equal(M(10, "USD")) {
		t.Error("same amount in different currencies must not be Equal")
	}
	if M(10, "INR").Equal(M(11, "INR")) {
		t.Error("different amounts must not be Equal")
	}
}

func TestMoneyZero(t *testing.T) {
	if !M(0, "INR").IsZero() {
		t.Error("M(0).IsZero() = false, want true")
	}
	if M(0.01, "INR").IsZero() {
		t.Error("M(0.01).IsZero() = true, want false")
	}
	if got := M(42.17, "INR").AsFloat(); got != 42.17 {
		t.Errorf("AsFloat() = %v, want 42.17", got)
	}
}
