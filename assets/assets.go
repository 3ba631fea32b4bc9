package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/gravwalk/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader loads the embedded TMX levels and caches the parsed layouts.
type LevelLoader struct {
	cache map[string]*leveldata.Layout
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{
		cache: make(map[string]*leveldata.Layout),
	}
}

// MustLoadLevel returns the layout of levels/<name>.tmx.
func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Layout {
	if layout, ok := l.cache[name]; ok {
		return layout
	}

	layout, err := leveldata.LoadLayout(assetFS, path.Join("levels", name+".tmx"))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}

	l.cache[name] = layout
	return layout
}

// MustLoadLevels parses every embedded level.
func (l *LevelLoader) MustLoadLevels() []string {
	levels, names, err := leveldata.LoadAllLayouts(assetFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}
	for name, layout := range levels {
		l.cache[name] = layout
	}
	return names
}
