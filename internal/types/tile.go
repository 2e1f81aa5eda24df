package types

// Tile is one clickable desktop icon: a glyph and label shown at a fixed
// screen position that launches Command when activated.
type Tile struct {
	Label   string `json:"label" toml:"label" yaml:"label"`
	Glyph   string `json:"glyph" toml:"glyph" yaml:"glyph"`
	Command string `json:"command" toml:"command" yaml:"command"`
	X       int    `json:"x" toml:"x" yaml:"x"`
	Y       int    `json:"y" toml:"y" yaml:"y"`
}
