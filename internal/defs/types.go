// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"

	"go-waypoint-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyPath    = errors.New("level has no waypoints")
	ErrEmptyRound   = errors.New("round has events but zero length")
	ErrBadEvent     = errors.New("invalid spawn event")
	ErrBadStats     = errors.New("invalid stats")
	ErrTowerBlocked = errors.New("tower footprint is occupied")
	ErrBadSize      = errors.New("level size must be positive")
)

// Point is a position written as a two element sequence: [x, y].
type Point geom.Vec2

func (p Point) Vec() geom.Vec2 { return geom.Vec2(p) }

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	var xy []float64
	if err := n.Decode(&xy); err != nil {
		return fmt.Errorf("line %d: point: %w", n.Line, err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", n.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

func (p Point) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{p.X, p.Y} {
		var c yaml.Node
		if err := c.Encode(v); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &c)
	}
	return n, nil
}
