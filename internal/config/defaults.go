package config

import (
	_ "embed"
)

//go:embed defaults/froggit.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default froggit configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			CellSize: 64,
		},
		Frog: FrogConfig{
			HopDuration:  0.2,
			Lives:        3,
			FrameNeutral: 0,
			FrameFirst:   4,
			FrameLast:    2,
		},
		Death: DeathConfig{
			Duration: 0.6,
			Frames:   8,
		},
		Score: ScoreConfig{
			Row:     10,
			Capture: 50,
			Win:     1000,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
			Audio:    true,
			Level:    "default",
		},
	}
}
