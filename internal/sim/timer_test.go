package sim

import "testing"

func TestRepeatingTimerWraps(t *testing.T) {
	timer := NewTimer(0.7, TimerRepeating)

	fired := 0
	for i := 0; i < 70; i++ { // 7 seconds at 0.1s per tick
		timer.Tick(0.1)
		if timer.JustFinished() {
			fired++
		}
	}
	if fired != 10 {
		t.Errorf("expected 10 firings over 7s, got %d", fired)
	}
}

func TestRepeatingFinishedOnlyOnWrapTick(t *testing.T) {
	timer := NewTimer(0.5, TimerRepeating)

	timer.Tick(0.4)
	if timer.Finished() {
		t.Error("finished before period elapsed")
	}
	timer.Tick(0.2)
	if !timer.Finished() {
		t.Error("not finished on the wrap tick")
	}
	timer.Tick(0.1)
	if timer.Finished() {
		t.Error("finished persisted past the wrap tick")
	}
}

func TestOnceTimerStaysFinished(t *testing.T) {
	timer := NewTimer(0.15, TimerOnce)

	timer.Tick(0.1)
	if timer.Finished() {
		t.Error("finished early")
	}
	timer.Tick(0.1)
	if !timer.Finished() {
		t.Error("should be finished after 0.2s")
	}
	timer.Tick(0.1)
	if !timer.Finished() {
		t.Error("once timers must stay finished")
	}
	if timer.Remaining() != 0 {
		t.Errorf("remaining after finish: %v", timer.Remaining())
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)
	timer.Tick(1.5)
	if !timer.JustFinished() {
		t.Fatal("expected firing")
	}

	timer.Reset()
	if timer.JustFinished() || timer.Finished() {
		t.Error("reset should clear finished state")
	}
	timer.Tick(0.5)
	if timer.JustFinished() {
		t.Error("reset should rewind elapsed time")
	}
	timer.Tick(0.5)
	if !timer.JustFinished() {
		t.Error("expected firing one full period after reset")
	}
}
