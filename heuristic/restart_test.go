package heuristic

import "testing"

func TestLubySequence(t *testing.T) {
	want := []float64{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}

	for i, w := range want {
		if got := luby(uint(i + 1)); got != w {
			t.Fatalf("luby(%d) = %f, want %f", i+1, got, w)
		}
	}
}

func TestFixedRestartTriggersAtThreshold(t *testing.T) {
	r := NewFixedRestart(3, 2)

	for i := 0; i < 2; i++ {
		if r.OnConflict() {
			t.Fatalf("restart triggered too early on conflict %d", i+1)
		}
	}
	if !r.OnConflict() {
		t.Fatalf("expected restart to trigger on the 3rd conflict")
	}
}

func TestFixedRestartGrowsThresholdAfterRestart(t *testing.T) {
	r := NewFixedRestart(2, 2)

	r.OnConflict()
	r.OnConflict()
	r.OnRestart()

	if r.threshold != 4 {
		t.Fatalf("expected threshold to double to 4, got %f", r.threshold)
	}
}

func TestLubyRestartTriggersOnUnitRuns(t *testing.T) {
	r := NewLubyRestart(2)

	if r.OnConflict() {
		t.Fatalf("restart triggered too early on conflict 1")
	}
	if !r.OnConflict() {
		t.Fatalf("expected restart at 2 conflicts (luby(1)*unit = 2)")
	}
}
