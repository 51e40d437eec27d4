package ui

import (
	"math"

	"life3d/internal/camera"
	"life3d/internal/core"
	"life3d/pkg/sims/life"
)

// FieldStatus summarises the field for the HUD and the console.
func FieldStatus(f *life.Field, running bool) core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Field",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", f.Generation()),
			core.IntParam("population", "Population", f.Population()),
			core.IntParam("width", "Width", f.Width()),
			core.IntParam("height", "Height", f.Height()),
			core.BoolParam("running", "Running", running),
		},
	}
}

// CameraStatus reports position and heading, angles in degrees.
func CameraStatus(c camera.Camera) core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Camera",
		Params: []core.Parameter{
			core.FloatParam("cam_x", "X", c.Position.X, 2),
			core.FloatParam("cam_y", "Y", c.Position.Y, 2),
			core.FloatParam("cam_z", "Z", c.Position.Z, 2),
			core.FloatParam("yaw", "Yaw", c.Horizontal*180/math.Pi, 1),
			core.FloatParam("pitch", "Pitch", c.Vertical*180/math.Pi, 1),
		},
	}
}

// Snapshot bundles groups into a snapshot, skipping empty ones.
func Snapshot(groups ...core.ParameterGroup) core.ParameterSnapshot {
	var s core.ParameterSnapshot
	for _, g := range groups {
		if len(g.Params) == 0 {
			continue
		}
		s.Groups = append(s.Groups, g)
	}
	return s
}
