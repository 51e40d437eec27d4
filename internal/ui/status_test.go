package ui

import (
	"math"
	"testing"

	"life3d/internal/camera"
	"life3d/internal/core"
	"life3d/pkg/linalg"
	"life3d/pkg/sims/life"
)

func TestFieldStatus(t *testing.T) {
	f := life.New(4, 3, life.Dead)
	f.Set(1, 1, life.Alive)
	f.Set(2, 1, life.Alive)

	fields := Snapshot(FieldStatus(f, true)).Fields()
	want := map[string]string{
		"generation": "0",
		"population": "2",
		"width":      "4",
		"height":     "3",
		"running":    "true",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("%s: expected %q, got %v", k, v, fields[k])
		}
	}
}

func TestCameraStatusDegrees(t *testing.T) {
	c := camera.Camera{Position: linalg.V3(15, -15, 30), Horizontal: math.Pi, Vertical: -math.Pi / 4}
	g := CameraStatus(c)
	if g.Name != "Camera" {
		t.Fatalf("unexpected group name %q", g.Name)
	}
	got := map[string]string{}
	for _, p := range g.Params {
		got[p.Key] = p.Value
	}
	if got["cam_x"] != "15.00" || got["cam_y"] != "-15.00" || got["cam_z"] != "30.00" {
		t.Fatalf("unexpected position %v", got)
	}
	if got["yaw"] != "180.0" || got["pitch"] != "-45.0" {
		t.Fatalf("unexpected angles yaw=%s pitch=%s", got["yaw"], got["pitch"])
	}
}

func TestSnapshotSkipsEmptyGroups(t *testing.T) {
	s := Snapshot(core.ParameterGroup{Name: "Empty"}, FieldStatus(life.New(1, 1, life.Dead), false))
	if len(s.Groups) != 1 || s.Groups[0].Name != "Field" {
		t.Fatalf("expected only the field group, got %+v", s.Groups)
	}
	lines := s.Lines()
	if lines[0] != "[Field]" || lines[1] != "  Generation: 0" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
