package systems

import (
	"fmt"

	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/fonts"
	"github.com/automoto/gravwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 20
)

// DrawHUD renders the player's locomotion state and attraction in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("rules: %s", getVariant(e)),
		fmt.Sprintf("state: %s", player.State),
		fmt.Sprintf("grounded: %t", player.Grounded),
		fmt.Sprintf("attraction: %s", describeAttraction(e, playerEntry)),
	}
	drawLines(screen, fonts.HUD.Face(), lines, hudMargin, hudMargin)
}

func describeAttraction(e *ecs.ECS, entry *donburi.Entry) string {
	w, ok := getWorld(e)
	if !ok {
		return "none"
	}
	a, ok := resolveAttraction(e, w, entry)
	if !ok {
		return "none"
	}
	return fmt.Sprintf("planet at (%.0f, %.0f)", a.Center.X, a.Center.Y)
}

func drawLines(screen *ebiten.Image, face text.Face, lines []string, x, y float64) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i*hudLineHeight))
		op.ColorScale.ScaleWithColor(cfg.Colors.HUDText)
		text.Draw(screen, line, face, op)
	}
}
