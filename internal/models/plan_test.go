package models

import "testing"

func TestNormalizePlan(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "week", want: "week"},
		{in: "month", want: "month"},
		{in: "quarter", want: "quarter"},
		{in: "", want: "month"},
		{in: "year", want: "month"},
		{in: "WEEK", want: "month"},
	}

	for _, tt := range tests {
		if got := NormalizePlan(tt.in); got != tt.want {
			t.Fatalf("NormalizePlan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlanPrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "week", want: "99.00"},
		{in: "month", want: "139.00"},
		{in: "quarter", want: "269.00"},
		{in: "", want: "139.00"},
		{in: "lifetime", want: "139.00"},
	}

	for _, tt := range tests {
		if got := PlanPrice(tt.in); got != tt.want {
			t.Fatalf("PlanPrice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
