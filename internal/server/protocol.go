// Package server streams cubie poses to an external renderer over
// websockets and accepts move commands back. It is the presentation-layer
// boundary: the renderer draws whatever poses it is given and holds no
// cube logic of its own.
package server

import "github.com/SeamusWaldron/cubesim"

// Version is the wire protocol version.
const Version = 1

// BootstrapResponse describes the cube to a connecting renderer: static
// per-cubie data that never changes across moves.
type BootstrapResponse struct {
	ProtocolVersion int         `json:"protocol_version"`
	TickRateHz      int         `json:"tick_rate_hz"`
	Cubies          []CubieSpec `json:"cubies"`
}

// CubieSpec is the static description of one cubie.
type CubieSpec struct {
	Home     [3]int            `json:"home"`
	Kind     string            `json:"kind"`
	Stickers map[string]string `json:"stickers"` // face letter -> color letter
}

// PoseFrame is sent every tick while at least one client is subscribed.
type PoseFrame struct {
	Type   string     `json:"type"` // "poses"
	State  string     `json:"state"`
	Solved bool       `json:"solved"`
	Poses  []PoseSpec `json:"poses"`
}

// PoseSpec is one cubie's presentation pose.
type PoseSpec struct {
	Home   [3]int     `json:"home"`
	Pos    [3]float64 `json:"pos"`
	Orient [4]float64 `json:"orient"` // w, x, y, z
}

// MoveCommand is an inbound request from a renderer: a face identified by
// axis and sign, and a right-hand-rule turn direction.
type MoveCommand struct {
	Type      string `json:"type"` // "move"
	Axis      string `json:"axis"` // "x", "y", "z"
	Sign      int    `json:"sign"`
	Direction int    `json:"direction"`
}

// parseMove converts a wire command to an engine move.
func parseMove(cmd MoveCommand) (cubesim.Move, bool) {
	var axis cubesim.Axis
	switch cmd.Axis {
	case "x":
		axis = cubesim.AxisX
	case "y":
		axis = cubesim.AxisY
	case "z":
		axis = cubesim.AxisZ
	default:
		return cubesim.Move{}, false
	}

	m := cubesim.Move{
		Face: cubesim.Face{Axis: axis, Sign: cmd.Sign},
		Dir:  cubesim.Direction(cmd.Direction),
	}
	if !m.Face.Valid() || !m.Dir.Valid() {
		return cubesim.Move{}, false
	}
	return m, true
}

// buildBootstrap assembles the static cube description.
func buildBootstrap(lat *cubesim.Lattice, tickRate int) BootstrapResponse {
	cubies := make([]CubieSpec, 0, cubesim.NumCubies)
	for _, c := range lat.Cubies() {
		spec := CubieSpec{
			Home:     [3]int{c.Home.X, c.Home.Y, c.Home.Z},
			Kind:     c.Kind().String(),
			Stickers: make(map[string]string),
		}
		for _, f := range cubesim.Faces() {
			if c.Home.Component(f.Axis) == f.Sign {
				spec.Stickers[f.Letter()] = f.SolvedColor().String()
			}
		}
		cubies = append(cubies, spec)
	}
	return BootstrapResponse{
		ProtocolVersion: Version,
		TickRateHz:      tickRate,
		Cubies:          cubies,
	}
}

// buildFrame snapshots the engine's presentation state for one tick.
func buildFrame(eng *cubesim.Engine) PoseFrame {
	poses := eng.Poses()
	frame := PoseFrame{
		Type:   "poses",
		State:  eng.State().String(),
		Solved: eng.Lattice().IsSolved(),
		Poses:  make([]PoseSpec, len(poses)),
	}
	for i, p := range poses {
		frame.Poses[i] = PoseSpec{
			Home:   [3]int{p.Home.X, p.Home.Y, p.Home.Z},
			Pos:    [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
			Orient: [4]float64{p.Orient.W, p.Orient.X, p.Orient.Y, p.Orient.Z},
		}
	}
	return frame
}
