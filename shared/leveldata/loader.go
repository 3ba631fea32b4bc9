package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLayout parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Layout{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	originX := float64(data.MapWidth) / 2
	originY := float64(data.MapHeight) / 2
	toWorld := func(x, y float64) (float64, float64) {
		return x - originX, originY - y
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Planets":
			for _, o := range og.Objects {
				radius := o.Properties.GetFloat("radius")
				if radius <= 0 {
					radius = o.Width / 2
				}
				x, y := toWorld(o.X+o.Width/2, o.Y+o.Height/2)
				data.Planets = append(data.Planets, PlanetSpawn{
					X:          x,
					Y:          y,
					Radius:     radius,
					Home:       o.Properties.GetBool("home"),
					Atmosphere: o.Properties.GetString("atmosphere") != "false",
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) == 0 || data.PlayerSpawn != nil {
				continue
			}
			x, y := toWorld(og.Objects[0].X, og.Objects[0].Y)
			data.PlayerSpawn = &SpawnPoint{X: x, Y: y}
		}
	}

	if len(data.Planets) == 0 {
		return nil, fmt.Errorf("%s: no planets in the Planets layer", tmxPath)
	}
	return data, nil
}

// LoadAllLayouts discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadLayout(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
