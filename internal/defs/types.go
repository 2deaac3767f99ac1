// internal/defs/types.go
package defs

import "image/color"

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
}
