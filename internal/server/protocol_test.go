package server

import (
	"testing"

	"github.com/SeamusWaldron/cubesim"
)

func TestParseMove(t *testing.T) {
	m, ok := parseMove(MoveCommand{Type: "move", Axis: "z", Sign: 1, Direction: 1})
	if !ok {
		t.Fatal("valid command rejected")
	}
	if m.Face != cubesim.FaceFront || m.Dir != cubesim.Forward {
		t.Errorf("parsed %+v, want front forward", m)
	}

	bad := []MoveCommand{
		{Axis: "w", Sign: 1, Direction: 1},
		{Axis: "x", Sign: 0, Direction: 1},
		{Axis: "x", Sign: 2, Direction: 1},
		{Axis: "x", Sign: 1, Direction: 0},
	}
	for _, cmd := range bad {
		if _, ok := parseMove(cmd); ok {
			t.Errorf("command %+v should be rejected", cmd)
		}
	}
}

func TestBuildBootstrap(t *testing.T) {
	resp := buildBootstrap(cubesim.NewLattice(), 60)

	if resp.ProtocolVersion != Version {
		t.Errorf("version = %d, want %d", resp.ProtocolVersion, Version)
	}
	if len(resp.Cubies) != cubesim.NumCubies {
		t.Fatalf("expected %d cubies, got %d", cubesim.NumCubies, len(resp.Cubies))
	}

	stickerCounts := map[string]int{"center": 1, "edge": 2, "corner": 3}
	for _, c := range resp.Cubies {
		want, ok := stickerCounts[c.Kind]
		if !ok {
			t.Errorf("unknown kind %q", c.Kind)
			continue
		}
		if len(c.Stickers) != want {
			t.Errorf("%s cubie %v has %d stickers, want %d", c.Kind, c.Home, len(c.Stickers), want)
		}
	}
}

func TestBuildFrame(t *testing.T) {
	eng := cubesim.NewEngine()
	frame := buildFrame(eng)

	if frame.Type != "poses" {
		t.Errorf("type = %q, want poses", frame.Type)
	}
	if !frame.Solved {
		t.Error("fresh engine should report solved")
	}
	if frame.State != "idle" {
		t.Errorf("state = %q, want idle", frame.State)
	}
	if len(frame.Poses) != cubesim.NumCubies {
		t.Errorf("expected %d poses, got %d", cubesim.NumCubies, len(frame.Poses))
	}
}
