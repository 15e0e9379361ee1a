package pricing

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty", "", 0},
		{"single char rounds up", "a", 1},
		{"exact boundary", "abcd", 1},
		{"boundary plus one", "abcde", 2},
		{"forty chars", strings.Repeat("x", 40), 10},
		{"thousand chars", strings.Repeat("x", 1000), 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EstimateTokens(tt.text)
			if result != tt.expected {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, result, tt.expected)
			}
		})
	}
}

func TestEstimateCost(t *testing.T) {
	got := EstimateCost(1000, 0)
	if got != PricePer1KTokens {
		t.Errorf("EstimateCost(1000, 0) = %f, want %f", got, PricePer1KTokens)
	}
	got = EstimateCost(500, 500)
	if got != PricePer1KTokens {
		t.Errorf("EstimateCost(500, 500) = %f, want %f", got, PricePer1KTokens)
	}
	if EstimateCost(0, 0) != 0 {
		t.Error("EstimateCost(0, 0) should be 0")
	}
}

func TestEstimateTotalCostIncludesImage(t *testing.T) {
	without := EstimateTotalCost(100, false)
	with := EstimateTotalCost(100, true)
	if with-without != ImagePrice {
		t.Errorf("image surcharge = %f, want %f", with-without, ImagePrice)
	}
}

func TestCheckBudgetMonotonic(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 8000; n += 400 {
		d := CheckBudget(strings.Repeat("x", n))
		if d.EstimatedCost < prev {
			t.Fatalf("estimated cost decreased at length %d: %f < %f", n, d.EstimatedCost, prev)
		}
		prev = d.EstimatedCost
	}
}

func TestCheckBudgetThreshold(t *testing.T) {
	// Find the exact length where the estimate crosses the ceiling, then
	// verify the decision flips between one character below and at it.
	over := -1
	for n := 0; n < 40000; n++ {
		if !CheckBudget(strings.Repeat("x", n)).WithinBudget {
			over = n
			break
		}
	}
	if over <= 0 {
		t.Fatal("no input length exceeded the budget ceiling")
	}
	if !CheckBudget(strings.Repeat("x", over-1)).WithinBudget {
		t.Errorf("length %d should be within budget", over-1)
	}
	if CheckBudget(strings.Repeat("x", over)).WithinBudget {
		t.Errorf("length %d should exceed budget", over)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		max      int
		expected string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"minimum useful", "abcdefgh", 4, "a..."},
		{"empty", "", 40, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateText(tt.text, tt.max)
			if result != tt.expected {
				t.Errorf("TruncateText(%q, %d) = %q, want %q", tt.text, tt.max, result, tt.expected)
			}
		})
	}
}

func TestTruncateTextNeverExceedsMax(t *testing.T) {
	inputs := []string{"", "a", "abc", "abcd", strings.Repeat("z", 500), "hello world, this is long"}
	for _, s := range inputs {
		for max := 4; max <= 60; max += 7 {
			if got := TruncateText(s, max); len(got) > max {
				t.Fatalf("TruncateText(%q, %d) returned %d chars", s, max, len(got))
			}
		}
	}
}

func TestTruncateTextKeepsRunesWhole(t *testing.T) {
	// Accented and emoji-heavy provider output must not be cut
	// mid-rune.
	inputs := []string{
		strings.Repeat("é", 30),
		"café and crème brûlée all day long",
		"launch 🚀 your störe 🛒 today with zero hassle",
	}
	for _, s := range inputs {
		for max := 4; max <= 40; max += 3 {
			got := TruncateText(s, max)
			if len(got) > max {
				t.Fatalf("TruncateText(%q, %d) returned %d bytes", s, max, len(got))
			}
			if !utf8.ValidString(got) {
				t.Fatalf("TruncateText(%q, %d) = %q is not valid UTF-8", s, max, got)
			}
		}
	}
}

func TestFormatCost(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		expected string
	}{
		{"tiny", 0.0001, "£0.0001"},
		{"small", 0.005, "£0.005"},
		{"medium", 0.05, "£0.05"},
		{"large", 1.50, "£1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatCost(tt.cost)
			if result != tt.expected {
				t.Errorf("FormatCost(%f) = %s, want %s", tt.cost, result, tt.expected)
			}
		})
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name     string
		tokens   int
		expected string
	}{
		{"small", 500, "500"},
		{"thousand", 1500, "1.5k"},
		{"large", 15000, "15k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTokens(tt.tokens)
			if result != tt.expected {
				t.Errorf("FormatTokens(%d) = %s, want %s", tt.tokens, result, tt.expected)
			}
		})
	}
}
