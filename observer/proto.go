package observer

import (
	"github.com/lixenwraith/pyramid-scene/celestial"
	"github.com/lixenwraith/pyramid-scene/config"
	"github.com/lixenwraith/pyramid-scene/scene"
	"github.com/lixenwraith/pyramid-scene/world"
)

// Version is the observer protocol version
const Version = "1"

// Message types
const (
	TypeBootstrap = "BOOTSTRAP"
	TypeFrame     = "FRAME"
	TypeReset     = "RESET"
)

// BootstrapResponse is the static scene served by GET /bootstrap
type BootstrapResponse struct {
	Type            string            `json:"type"`
	ProtocolVersion string            `json:"protocol_version"`
	WorldID         string            `json:"world_id"`
	Seed            uint64            `json:"seed"`
	Config          config.Generation `json:"config"`
	GroundSize      float64           `json:"ground_size"`
	Blocks          []BlockInfo       `json:"blocks"`
	Trees           []TreeInfo        `json:"trees"`
	Body            BodyInfo          `json:"body"`
}

type BlockInfo struct {
	Tier  int        `json:"tier"`
	Pos   [3]float64 `json:"pos"`
	Hue   float64    `json:"hue"`
	Color string     `json:"color"` // hex tint
}

type TreeInfo struct {
	ID   int        `json:"id"`
	Name string     `json:"name"`
	Pos  [3]float64 `json:"pos"`
}

type BodyInfo struct {
	Pos   [3]float64 `json:"pos"`
	Scale float64    `json:"scale"`
}

// FrameMsg is streamed on /ws for every forwarded tick
type FrameMsg struct {
	Type            string  `json:"type"`
	ProtocolVersion string  `json:"protocol_version"`
	WorldID         string  `json:"world_id"`
	Tick            uint64  `json:"tick"`
	Elapsed         float64 `json:"elapsed"`
	Angle           float64 `json:"angle"`
	Cycle           float64 `json:"cycle"`
	Intensity       float64 `json:"intensity"`
	Ambient         string  `json:"ambient"`
	Phase           string  `json:"phase"`
	Event           string  `json:"event,omitempty"`
}

// ResetMsg tells observers the world was regenerated and the bootstrap must be refetched
type ResetMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	WorldID         string `json:"world_id"`
}

// NewBootstrap snapshots the static geometry of a world
func NewBootstrap(w *world.World) BootstrapResponse {
	resp := BootstrapResponse{
		Type:            TypeBootstrap,
		ProtocolVersion: Version,
		WorldID:         w.ID.String(),
		Seed:            w.Seed,
		Config:          w.Config,
		GroundSize:      w.Ground.Size,
		Blocks:          make([]BlockInfo, 0, len(w.Blocks)),
		Trees:           make([]TreeInfo, 0, len(w.Trees)),
		Body: BodyInfo{
			Pos:   w.Body.Position,
			Scale: w.Body.Scale,
		},
	}
	for _, b := range w.Blocks {
		resp.Blocks = append(resp.Blocks, BlockInfo{
			Tier:  b.Tier,
			Pos:   b.Position,
			Hue:   b.Hue,
			Color: scene.BlockColor(b.Hue).Hex(),
		})
	}
	for _, t := range w.Trees {
		resp.Trees = append(resp.Trees, TreeInfo{
			ID:   t.ID,
			Name: t.Name(),
			Pos:  t.Position,
		})
	}
	return resp
}

// NewFrameMsg converts a world frame into its wire form
func NewFrameMsg(worldID string, f world.Frame) FrameMsg {
	msg := FrameMsg{
		Type:            TypeFrame,
		ProtocolVersion: Version,
		WorldID:         worldID,
		Tick:            f.Tick,
		Elapsed:         f.State.Elapsed,
		Angle:           f.State.Angle,
		Cycle:           f.State.Cycle,
		Intensity:       f.State.Intensity,
		Ambient:         f.State.Ambient.Clamped().Hex(),
		Phase:           f.State.Phase.String(),
	}
	if f.Event != celestial.EventNone {
		msg.Event = f.Event.String()
	}
	return msg
}
