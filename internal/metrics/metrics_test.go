package metrics

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeNothingTyped(t *testing.T) {
	gross, net, accuracy := Compute(0, 0, 42.0)
	if gross != 0 || net != 0 {
		t.Fatalf("expected zero WPM before any input, got gross=%v net=%v", gross, net)
	}
	if accuracy != 100 {
		t.Fatalf("expected 100%% accuracy before any input, got %v", accuracy)
	}
}

func TestComputeTinyElapsed(t *testing.T) {
	gross, net, accuracy := Compute(3, 4, 0.005)
	if gross != 0 || net != 0 {
		t.Fatalf("expected zero WPM below the elapsed floor, got gross=%v net=%v", gross, net)
	}
	if !almostEqual(accuracy, 75) {
		t.Fatalf("expected count-derived accuracy 75, got %v", accuracy)
	}
}

func TestComputeKnownSession(t *testing.T) {
	gross, net, accuracy := Compute(45, 50, 30.0)
	if !almostEqual(gross, 20) {
		t.Fatalf("gross WPM = %v, want 20", gross)
	}
	if !almostEqual(net, 10) {
		t.Fatalf("net WPM = %v, want 10", net)
	}
	if !almostEqual(accuracy, 90) {
		t.Fatalf("accuracy = %v, want 90", accuracy)
	}
}

func TestComputePerfectAccuracy(t *testing.T) {
	for _, typed := range []int{1, 17, 250} {
		_, _, accuracy := Compute(typed, typed, 60.0)
		if !almostEqual(accuracy, 100) {
			t.Fatalf("accuracy for %d/%d = %v, want 100", typed, typed, accuracy)
		}
	}
}

func TestComputeNetNeverExceedsGross(t *testing.T) {
	cases := []struct {
		correct, typed int
		elapsed        float64
	}{
		{0, 10, 5},
		{5, 10, 5},
		{10, 10, 5},
		{45, 50, 30},
		{100, 400, 12.5},
		{1, 300, 90},
	}
	for _, c := range cases {
		gross, net, _ := Compute(c.correct, c.typed, c.elapsed)
		if net > gross {
			t.Fatalf("net %v exceeds gross %v for %+v", net, gross, c)
		}
		if net < 0 {
			t.Fatalf("net %v is negative for %+v", net, c)
		}
	}
}

func TestComputeNetFloorsAtZero(t *testing.T) {
	// One correct character out of many: the error penalty dwarfs gross.
	gross, net, _ := Compute(1, 100, 60.0)
	if gross <= 0 {
		t.Fatalf("expected positive gross, got %v", gross)
	}
	if net != 0 {
		t.Fatalf("expected net floored at 0, got %v", net)
	}
}
