package scenes

import (
	"log"
	"sync"

	"github.com/automoto/gravwalk/assets"
	"github.com/automoto/gravwalk/components"
	cfg "github.com/automoto/gravwalk/config"
	"github.com/automoto/gravwalk/systems"
	"github.com/automoto/gravwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// levelNames maps each rule set to the level it plays on.
var levelNames = map[cfg.Variant]string{
	cfg.VariantTwin: "twin",
	cfg.VariantHome: "home",
}

var levels = assets.NewLevelLoader()

// PreloadLevels parses every embedded level so a broken one fails at startup.
func PreloadLevels() {
	names := levels.MustLoadLevels()
	log.Printf("Loaded levels: %v", names)
}

// PlanetScene runs the planet-walking simulation for one rule set.
type PlanetScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	variant      cfg.Variant
	once         sync.Once
}

func NewPlanetScene(sc SceneChanger, v cfg.Variant) *PlanetScene {
	return &PlanetScene{sceneChanger: sc, variant: v}
}

func (ps *PlanetScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if ps.backRequested() {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.variant))
	}
}

func (ps *PlanetScene) backRequested() bool {
	entry, ok := components.Input.First(ps.ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Action(cfg.ActionBack).JustPressed
}

func (ps *PlanetScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlanetScene) configure() {
	systems.PreloadAllSFX()

	ps.ecs = NewPlanetECS(ps.variant)
	log.Printf("Starting %s rules on level %s", ps.variant, levelNames[ps.variant])
}

// NewPlanetECS builds the world for a rule set with systems in pipeline order.
func NewPlanetECS(v cfg.Variant) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.WithPauseCheck(systems.UpdateGravity))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateOrientation))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLocomotion))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateAim))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateShoot))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysicsEvents))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.UpdateDebug)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	layout := levels.MustLoadLevel(levelNames[v])
	factory.CreateLevel(e, layout, v)
	return e
}
