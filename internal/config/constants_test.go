package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if StatusMessageTTL <= TickInterval {
		t.Fatalf("StatusMessageTTL should outlive a tick")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if ViewModeBoard != 0 || ViewModeTable != 1 {
		t.Fatalf("unexpected view mode constants")
	}
	if MaxVisibleTasks <= 0 || MinColumnWidth <= 0 {
		t.Fatalf("layout limits must be positive")
	}
}
