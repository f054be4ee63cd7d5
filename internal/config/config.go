// Package config provides YAML-based game configuration loading for froggit.
package config

// GameConfig contains all tunable parameters of the simulation and frontends.
type GameConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Frog    FrogConfig    `yaml:"frog"`
	Death   DeathConfig   `yaml:"death"`
	Score   ScoreConfig   `yaml:"score"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// GridConfig defines level geometry.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"` // Pixels per grid cell
}

// FrogConfig defines the player piece.
type FrogConfig struct {
	HopDuration  float64 `yaml:"hop_duration"` // Seconds to cross one cell
	Lives        int     `yaml:"lives"`
	FrameNeutral int     `yaml:"frame_neutral"` // Sprite frame at rest
	FrameFirst   int     `yaml:"frame_first"`   // Extreme pose for up/right hops
	FrameLast    int     `yaml:"frame_last"`    // Extreme pose for down/left hops
}

// DeathConfig defines the death marker animation.
type DeathConfig struct {
	Duration float64 `yaml:"duration"` // Seconds for the full animation
	Frames   int     `yaml:"frames"`
}

// ScoreConfig defines score awards.
type ScoreConfig struct {
	Row     int `yaml:"row"`     // First visit of a row during one life
	Capture int `yaml:"capture"` // Each captured exit
	Win     int `yaml:"win"`     // All exits captured
}

// RuntimeConfig defines frontend behavior.
type RuntimeConfig struct {
	TickRate int    `yaml:"tick_rate"`
	Audio    bool   `yaml:"audio"`
	Level    string `yaml:"level"` // Bundled level ID played by default
}
