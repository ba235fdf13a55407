package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaultsMatchDefault(t *testing.T) {
	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != Default() {
		t.Fatalf("expected env defaults to match Default(), got %+v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROOM_MOVE_SPEED", "5.5")
	t.Setenv("ROOM_TRANSITION_DURATION", "750ms")
	t.Setenv("ROOM_GROUND_LOCKED", "false")

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.MoveSpeed != 5.5 {
		t.Errorf("expected move speed 5.5, got %v", got.MoveSpeed)
	}
	if got.TransitionDuration != 750*time.Millisecond {
		t.Errorf("expected 750ms transition, got %v", got.TransitionDuration)
	}
	if got.GroundLocked {
		t.Error("expected ground lock disabled")
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("ROOM_COLLISION_RADIUS", "wide")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := Default()
	bad.PitchEpsilon = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected zero pitch epsilon to be rejected")
	}

	bad = Default()
	bad.CollisionRadius = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected negative radius to be rejected")
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("expected default tuning to validate, got %v", err)
	}
}
