package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/gravwalk/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the main menu: pick the rules to play and toggle options.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay          func(v cfg.Variant)
	OnToggleOverlay func() bool
	OnToggleFull    func() bool

	overlayBtn *widget.Button
	fullBtn    *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(selected cfg.Variant, onPlay func(cfg.Variant), onToggleOverlay, onToggleFull func() bool) *MenuUI {
	ui := &MenuUI{
		OnPlay:          onPlay,
		OnToggleOverlay: onToggleOverlay,
		OnToggleFull:    onToggleFull,
	}
	ui.loadFonts()
	ui.buildUI(selected)
	return ui
}

func (ui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
}

func (ui *MenuUI) buildUI(selected cfg.Variant) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	variants := []struct {
		variant cfg.Variant
		label   string
	}{
		{cfg.VariantTwin, "Twin planets"},
		{cfg.VariantHome, "Home planet"},
	}
	for _, v := range variants {
		label := v.label
		if v.variant == selected {
			label += "  (last played)"
		}
		content.AddChild(ui.button(label, color.RGBA{40, 100, 40, 255}, func() {
			if ui.OnPlay != nil {
				ui.OnPlay(v.variant)
			}
		}))
	}

	ui.overlayBtn = ui.button(toggleLabel("Debug overlay", cfg.Debug.ShowOverlay), color.RGBA{60, 60, 90, 255}, func() {
		if ui.OnToggleOverlay != nil {
			ui.overlayBtn.SetText(toggleLabel("Debug overlay", ui.OnToggleOverlay()))
		}
	})
	content.AddChild(ui.overlayBtn)

	ui.fullBtn = ui.button(toggleLabel("Fullscreen", ebiten.IsFullscreen()), color.RGBA{60, 60, 90, 255}, func() {
		if ui.OnToggleFull != nil {
			ui.fullBtn.SetText(toggleLabel("Fullscreen", ui.OnToggleFull()))
		}
	})
	content.AddChild(ui.fullBtn)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("WASD move, Space jump, click or J shoot, wheel zoom, F3 overlay, Esc menu", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	))

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) button(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{base.R + 20, base.G + 40, base.B + 20, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(260, 34)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(base),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(color.RGBA{base.R / 2, base.G / 2, base.B / 2, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 255, 220, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func toggleLabel(name string, on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return fmt.Sprintf("%s: %s", name, state)
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}
