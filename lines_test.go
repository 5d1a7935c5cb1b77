package gauges

import (
	"errors"
	"testing"
)

func TestLinesBoundedHistory(t *testing.T) {
	sample := 0.0
	l, err := NewLines(Size{300, 100},
		WithLinesCapacity(300),
		WithLinesSource(func() ([]float64, error) {
			sample++
			return []float64{sample}, nil
		}))
	if err != nil {
		t.Fatalf("NewLines: %v", err)
	}

	// Render well past capacity.
	for i := 0; i < 350; i++ {
		if _, err := l.Render(); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}

	if got := l.SeriesLen(0); got != 300 {
		t.Fatalf("history length = %d, want exactly 300", got)
	}
	// Exactly the 300 most recent samples, oldest first (FIFO eviction).
	s := l.history[0]
	for i := 0; i < 300; i++ {
		want := float64(51 + i)
		if got := s.at(i); got != want {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestLinesPartialSamples(t *testing.T) {
	l, err := NewLines(Size{300, 100}, WithLinesSource(func() ([]float64, error) {
		return []float64{1, 2, 3}, nil // only the first three series
	}))
	if err != nil {
		t.Fatalf("NewLines: %v", err)
	}
	if _, err := l.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i := 0; i < DefaultSeriesCount; i++ {
		want := 0
		if i < 3 {
			want = 1
		}
		if got := l.SeriesLen(i); got != want {
			t.Errorf("series %d length = %d, want %d", i, got, want)
		}
	}
}

func TestLinesExtraSamplesIgnored(t *testing.T) {
	l, err := NewLines(Size{100, 50},
		WithLinesSeries(2),
		WithLinesSource(func() ([]float64, error) {
			return []float64{1, 2, 3, 4}, nil
		}))
	if err != nil {
		t.Fatalf("NewLines: %v", err)
	}
	if _, err := l.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := l.SeriesLen(0); got != 1 {
		t.Errorf("series 0 length = %d, want 1", got)
	}
	if got := l.SeriesLen(2); got != 0 {
		t.Errorf("series 2 must not exist, got length %d", got)
	}
}

func TestLinesSampleY(t *testing.T) {
	l, err := NewLines(Size{300, 100})
	if err != nil {
		t.Fatalf("NewLines: %v", err)
	}

	tests := []struct {
		v    float64
		want float64
	}{
		{-20, 100}, // bottom of the domain maps to the bottom edge
		{20, 0},    // top of the domain maps to the top edge
		{0, 50},
	}
	for _, tt := range tests {
		if got := l.sampleY(tt.v, 100); got != tt.want {
			t.Errorf("sampleY(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLinesSourceFailure(t *testing.T) {
	fail := errors.New("bus error")
	calls := 0
	l, err := NewLines(Size{100, 50}, WithLinesSource(func() ([]float64, error) {
		calls++
		if calls > 1 {
			return nil, fail
		}
		return []float64{5}, nil
	}))
	if err != nil {
		t.Fatalf("NewLines: %v", err)
	}

	if _, err := l.Render(); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	if _, err := l.Render(); !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("error = %v, want ErrDataUnavailable", err)
	}
	// A failed read appends nothing.
	if got := l.SeriesLen(0); got != 1 {
		t.Errorf("series 0 length = %d, want 1", got)
	}
}

func TestLinesInvalidCapacity(t *testing.T) {
	if _, err := NewLines(Size{100, 50}, WithLinesCapacity(0)); err == nil {
		t.Fatal("NewLines with capacity 0 should fail")
	}
}
