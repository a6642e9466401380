package occurs

import "testing"

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   BoundsIssue
	}{
		{name: "ok bounded", bounds: Bounds{Min: 0, Max: 2}, want: BoundsOK},
		{name: "negative min", bounds: Bounds{Min: -1, Max: 2}, want: BoundsNegative},
		{name: "negative max", bounds: Bounds{Min: 0, Max: -5}, want: BoundsNegative},
		{name: "max zero with min one", bounds: Bounds{Min: 1, Max: 0}, want: BoundsMaxZeroWithMinNonZero},
		{name: "min greater than max", bounds: Bounds{Min: 2, Max: 1}, want: BoundsMinGreaterThanMax},
		{name: "unbounded max", bounds: Bounds{Min: 1, Max: Unbounded}, want: BoundsOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckBounds(tt.bounds); got != tt.want {
				t.Fatalf("CheckBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsCheck(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		count  int
		want   Issue
	}{
		{name: "required missing", bounds: One, count: 0, want: TooFew},
		{name: "required present", bounds: One, count: 1, want: OK},
		{name: "single repeated", bounds: One, count: 2, want: TooMany},
		{name: "optional absent", bounds: Bounds{Min: 0, Max: 1}, count: 0, want: OK},
		{name: "unbounded many", bounds: Bounds{Min: 1, Max: Unbounded}, count: 500, want: OK},
		{name: "bounded over", bounds: Bounds{Min: 1, Max: 16}, count: 17, want: TooMany},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bounds.Check(tt.count); got != tt.want {
				t.Fatalf("Check(%d) = %v, want %v", tt.count, got, tt.want)
			}
		})
	}
}

func TestParseAndFormat(t *testing.T) {
	if got, err := ParseMax("unbounded"); err != nil || got != Unbounded {
		t.Fatalf("ParseMax(unbounded) = %d, %v", got, err)
	}
	if got, err := ParseMax("99"); err != nil || got != 99 {
		t.Fatalf("ParseMax(99) = %d, %v", got, err)
	}
	if _, err := ParseMax("-1"); err == nil {
		t.Fatalf("ParseMax(-1) expected error")
	}
	if _, err := ParseMin("x"); err == nil {
		t.Fatalf("ParseMin(x) expected error")
	}
	if got := (Bounds{Min: 1, Max: Unbounded}).String(); got != "1..unbounded" {
		t.Fatalf("String() = %q", got)
	}
	if !(Bounds{Min: 0, Max: 3}).IsRepeated() || One.IsRepeated() {
		t.Fatalf("IsRepeated mismatch")
	}
}
