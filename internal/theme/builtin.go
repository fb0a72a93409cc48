package theme

import "github.com/vovakirdan/neon-snake/internal/core"

// Default is the theme used when none is configured.
const Default = "neon"

func init() {
	// Slate board with a lime snake.
	Register(Theme{
		Name:           "neon",
		Description:    "Dark slate gradient, glowing green snake, orange-red food",
		BackgroundFrom: core.RGB(20, 30, 40),
		BackgroundTo:   core.RGB(40, 50, 60),
		Grid:           core.RGB(40, 50, 60),
		Border:         core.RGB(70, 85, 100),
		Head:           core.RGB(50, 205, 50),
		Eyes:           core.RGB(255, 255, 255),
		Body:           core.RGB(34, 139, 34),
		Food:           core.RGB(255, 69, 0),
		Particle:       core.RGB(255, 69, 0),
		Text:           core.RGB(255, 255, 255),
		GameOverFrom:   core.RGB(255, 0, 0),
		GameOverTo:     core.RGB(150, 0, 0),
	})

	Register(Theme{
		Name:           "classic",
		Description:    "Phosphor green on black",
		BackgroundFrom: core.RGB(0, 0, 0),
		BackgroundTo:   core.RGB(0, 20, 0),
		Grid:           core.RGB(0, 45, 0),
		Border:         core.RGB(0, 120, 0),
		Head:           core.RGB(120, 255, 120),
		Eyes:           core.RGB(0, 0, 0),
		Body:           core.RGB(0, 200, 0),
		Food:           core.RGB(255, 255, 0),
		Particle:       core.RGB(200, 255, 100),
		Text:           core.RGB(120, 255, 120),
		GameOverFrom:   core.RGB(200, 255, 200),
		GameOverTo:     core.RGB(0, 160, 0),
	})

	Register(Theme{
		Name:           "mono",
		Description:    "Grayscale, for terminals with poor color rendering",
		BackgroundFrom: core.RGB(18, 18, 18),
		BackgroundTo:   core.RGB(38, 38, 38),
		Grid:           core.RGB(58, 58, 58),
		Border:         core.RGB(120, 120, 120),
		Head:           core.RGB(250, 250, 250),
		Eyes:           core.RGB(0, 0, 0),
		Body:           core.RGB(180, 180, 180),
		Food:           core.RGB(255, 255, 255),
		Particle:       core.RGB(220, 220, 220),
		Text:           core.RGB(235, 235, 235),
		GameOverFrom:   core.RGB(255, 255, 255),
		GameOverTo:     core.RGB(130, 130, 130),
	})
}
