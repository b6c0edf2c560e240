package clock

import (
	"testing"
	"time"
)

func TestTimerDoesNotFireBeforePeriod(t *testing.T) {
	tm := NewTimer(150 * time.Millisecond)
	for i := 0; i < 14; i++ {
		if tm.Tick(10 * time.Millisecond).JustFinished() {
			t.Fatalf("fired after %d ms", (i+1)*10)
		}
	}
	if !tm.Tick(10 * time.Millisecond).JustFinished() {
		t.Fatalf("did not fire at 150ms")
	}
}

func TestTimerFiresOnceWhenAccumulatedPeriodReached(t *testing.T) {
	tm := NewTimer(150 * time.Millisecond)
	tm.Tick(100 * time.Millisecond)
	if !tm.Tick(50 * time.Millisecond).JustFinished() {
		t.Fatalf("expected fire at exactly the period")
	}
	if tm.Tick(10 * time.Millisecond).JustFinished() {
		t.Fatalf("fired again right after firing")
	}
}

func TestTimerOvershootCarriesRemainder(t *testing.T) {
	tm := NewTimer(150 * time.Millisecond)
	if !tm.Tick(160 * time.Millisecond).JustFinished() {
		t.Fatalf("expected fire on overshoot")
	}
	// 10ms carried: 139ms more is one short of the next period.
	if tm.Tick(139 * time.Millisecond).JustFinished() {
		t.Fatalf("fired before the carried remainder completed a period")
	}
	if !tm.Tick(time.Millisecond).JustFinished() {
		t.Fatalf("expected carried remainder to complete the next period")
	}
}

func TestTimerLargeDeltaFiresOnceAndKeepsFraction(t *testing.T) {
	tm := NewTimer(time.Second)
	if !tm.Tick(3500 * time.Millisecond).JustFinished() {
		t.Fatalf("expected fire")
	}
	// Whole periods are dropped, 500ms is carried.
	if tm.Tick(499 * time.Millisecond).JustFinished() {
		t.Fatalf("fired with only 999ms accumulated")
	}
	if !tm.Tick(time.Millisecond).JustFinished() {
		t.Fatalf("did not fire once the carried fraction reached a period")
	}
}

func TestTimerResetAndZeroPeriod(t *testing.T) {
	tm := NewTimer(time.Second)
	tm.Tick(900 * time.Millisecond)
	tm.Reset()
	if tm.Tick(200 * time.Millisecond).JustFinished() {
		t.Fatalf("fired after reset with only 200ms")
	}

	never := NewTimer(0)
	if never.Tick(time.Hour).JustFinished() {
		t.Fatalf("zero-period timer fired")
	}
}
