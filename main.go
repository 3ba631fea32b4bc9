package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/fonts"
	"github.com/automoto/gravwalk/scenes"
	"github.com/automoto/gravwalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(variant config.Variant) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	scenes.PreloadLevels()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlanetScene(g, variant)
	} else {
		g.scene = scenes.NewMenuScene(g, variant)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	variantName := flag.String("variant", "", "Rules to play: twin or home (default: last played)")
	configPath := flag.String("config", "", "YAML file overriding the tunables")
	skipMenu := flag.Bool("skipmenu", false, "Skip the menu and start playing")
	debug := flag.Bool("debug", false, "Start with the debug overlay visible")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.ShowOverlay = *debug

	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Printf("Warning: Could not load config overrides: %v", err)
		} else {
			f.Apply()
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Physics.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	variant := config.VariantTwin
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		variant = systems.ApplySavedSettingsGlobal(saved)
	}

	if *variantName != "" {
		v, ok := config.ParseVariant(*variantName)
		if !ok {
			log.Printf("Warning: unknown variant %q, using %s", *variantName, v)
		}
		variant = v
	}

	if err := ebiten.RunGame(NewGame(variant)); err != nil {
		log.Fatal(err)
	}
}
