// Package leveldata provides TMX level parsing for planet layouts.
// It has no dependencies on ebitengine, donburi, or the physics world; pure data only.
package leveldata

// Layout holds everything the game needs from a TMX level file, converted
// to world coordinates (y-up, origin at the map centre).
type Layout struct {
	Name        string
	Planets     []PlanetSpawn
	PlayerSpawn *SpawnPoint // nil when the level has none
	MapWidth    int
	MapHeight   int
}

// PlanetSpawn is one planet of the level.
type PlanetSpawn struct {
	X, Y       float64
	Radius     float64 // 0 means the configured default
	Home       bool    // attracts bodies with no atmosphere assigned
	Atmosphere bool    // has an atmosphere sensor
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}
