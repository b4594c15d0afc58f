package cadence

import (
	"image/color"
	"testing"
	"time"
)

func TestResultOrdering(t *testing.T) {
	ordered := []Result{InProgress, Done, Repeat, RepeatBack(1), RepeatBack(2), RepeatBack(10)}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should rank below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestRepeatBack(t *testing.T) {
	tests := []struct {
		n        int
		want     Result
		wantBack int
		str      string
	}{
		{-1, Repeat, 0, "repeat"},
		{0, Repeat, 0, "repeat"},
		{1, Repeat + 1, 1, "repeat-back-1"},
		{10, Repeat + 10, 10, "repeat-back-10"},
		{15, Repeat + MaxRepeatBack, MaxRepeatBack, "repeat-back-10"},
	}
	for _, tt := range tests {
		r := RepeatBack(tt.n)
		if r != tt.want {
			t.Errorf("RepeatBack(%d) = %d, want %d", tt.n, r, tt.want)
		}
		if r.Back() != tt.wantBack {
			t.Errorf("RepeatBack(%d).Back() = %d, want %d", tt.n, r.Back(), tt.wantBack)
		}
		if !r.IsRewind() {
			t.Errorf("RepeatBack(%d) is not a rewind", tt.n)
		}
		if r.String() != tt.str {
			t.Errorf("String = %q, want %q", r.String(), tt.str)
		}
	}
	if Done.IsRewind() || InProgress.IsRewind() {
		t.Error("Done and InProgress are not rewinds")
	}
	if Done.Back() != 0 {
		t.Error("Done.Back() should be 0")
	}
}

func TestKindString(t *testing.T) {
	if Instant.String() != "instant" || Interval.String() != "interval" {
		t.Errorf("got %q, %q", Instant, Interval)
	}
	if Kind(9).String() != "Kind(9)" {
		t.Errorf("unknown kind = %q", Kind(9).String())
	}
}

func TestToMillis(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want float32
	}{
		{0, 0},
		{time.Millisecond, 1},
		{500 * time.Millisecond, 500},
		{1500 * time.Microsecond, 1.5},
		{time.Second, 1000},
	}
	for _, tt := range tests {
		if got := toMillis(tt.d); got != tt.want {
			t.Errorf("toMillis(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorWhite, color.RGBA{255, 255, 255, 255}},
		{Color{1, 0, 0, 0.5}, color.RGBA{128, 0, 0, 128}},
		{Color{2, -1, 0.5, 1}, color.RGBA{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(); got != tt.want {
			t.Errorf("%+v.RGBA() = %v, want %v", tt.c, got, tt.want)
		}
	}
}
