package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/systems"
	"github.com/automoto/gravwalk/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	selected     cfg.Variant
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene with selected highlighted
func NewMenuScene(sc SceneChanger, selected cfg.Variant) *MenuScene {
	return &MenuScene{sceneChanger: sc, selected: selected}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(ms.selected, ms.play, toggleOverlay, toggleFullscreen)
}

func (ms *MenuScene) play(v cfg.Variant) {
	systems.SaveVariant(v)
	ms.sceneChanger.ChangeScene(NewPlanetScene(ms.sceneChanger, v))
}

func toggleOverlay() bool {
	on := !cfg.Debug.ShowOverlay
	cfg.Debug.ShowOverlay = on
	systems.ModifySettings(func(s *systems.SavedSettings) { s.ShowOverlay = on })
	return on
}

func toggleFullscreen() bool {
	on := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(on)
	systems.ModifySettings(func(s *systems.SavedSettings) { s.Fullscreen = on })
	return on
}
