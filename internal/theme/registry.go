// Package theme provides a global registry of color palettes.
// Palettes register themselves in init() functions, allowing the CLI
// to list and select them by name.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// ErrUnknownTheme is returned by Get for names that were never registered.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the full palette used to draw a frame.
type Theme struct {
	Name        string
	Description string

	BackgroundFrom core.Color // Top-left of the diagonal background gradient
	BackgroundTo   core.Color // Bottom-right of the diagonal background gradient
	Grid           core.Color
	Border         core.Color

	Head     core.Color
	Eyes     core.Color
	Body     core.Color
	Food     core.Color
	Particle core.Color

	Text         core.Color
	GameOverFrom core.Color // Left end of the "GAME OVER" title gradient
	GameOverTo   core.Color // Right end of the "GAME OVER" title gradient
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Panics if a theme with the same name is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := themes[t.Name]; exists {
		panic(fmt.Sprintf("theme: %q already registered", t.Name))
	}
	themes[t.Name] = t
}

// List returns all registered themes, sorted by name.
func List() []Theme {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Theme, 0, len(themes))
	for _, t := range themes {
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the theme registered under name.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}
	return t, nil
}
