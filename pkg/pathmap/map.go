// pkg/pathmap/map.go
package pathmap

import (
	"fmt"

	"go-waypoint-defense/pkg/geom"
)

// DefaultRoadWidth is the half-width of the road drawn along the waypoints.
const DefaultRoadWidth = 10.0

// Map is the static geometry of a level: the waypoint path enemies walk and
// the footprints that block construction.
//
// Waypoints must not be edited once enemies are walking them, since enemies
// hold indices into the slice.
type Map struct {
	Width         uint64
	Height        uint64
	RoadWidth     float64
	Waypoints     []geom.Vec2
	OccupiedAreas []geom.Rect
}

// New creates an empty map covering bounds.
func New(bounds geom.Rect) *Map {
	return &Map{
		Width:     uint64(bounds.Width),
		Height:    uint64(bounds.Height),
		RoadWidth: DefaultRoadWidth,
		Waypoints: make([]geom.Vec2, 0, 100),
	}
}

func (m *Map) AddWaypoint(p geom.Vec2) {
	m.Waypoints = append(m.Waypoints, p)
}

// Waypoint returns the i-th waypoint and panics if i is outside the path.
func (m *Map) Waypoint(i int) geom.Vec2 {
	if i < 0 || i >= len(m.Waypoints) {
		panic(fmt.Sprintf("pathmap: waypoint %d out of range (path length %d)", i, len(m.Waypoints)))
	}
	return m.Waypoints[i]
}

// AddOccupiedArea registers a footprint. Overlap with existing areas is not
// checked here; callers use IsAreaFree first.
func (m *Map) AddOccupiedArea(r geom.Rect) {
	m.OccupiedAreas = append(m.OccupiedAreas, r)
}

// IsAreaFree reports whether r overlaps none of the occupied areas.
func (m *Map) IsAreaFree(r geom.Rect) bool {
	for _, occ := range m.OccupiedAreas {
		if r.Overlaps(occ) {
			return false
		}
	}
	return true
}

// Bounds returns the full map rectangle anchored at the origin.
func (m *Map) Bounds() geom.Rect {
	return geom.R(0, 0, float64(m.Width), float64(m.Height))
}
