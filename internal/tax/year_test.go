package tax

import (
	"testing"
	"time"
)

func TestYearFor(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-03-31", 2023},
		{"2024-04-01", 2024},
		{"2024-12-25", 2024},
		{"2025-01-15", 2024},
	}
	for _, tt := range tests {
		d, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := YearFor(d); got != tt.want {
			t.Errorf("YearFor(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestYearRange(t *testing.T) {
	start, end := YearRange(2023)
	if start.Format("2006-01-02") != "2023-04-01" {
		t.Errorf("start = %s, want 2023-04-01", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2024-03-31" {
		t.Errorf("end = %s, want 2024-03-31", end.Format("2006-01-02"))
	}
	if YearFor(start) != 2023 || YearFor(end) != 2023 {
		t.Error("both ends of the range must fall in their own year")
	}
}
