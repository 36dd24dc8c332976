package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuOption is one line of the main menu, in display order.
type MenuOption int

const (
	OptionPlay MenuOption = iota
	OptionLevel
	OptionSettings
	OptionExit
	optionCount
)

// MenuState is what the widgets show. It is copied from the ECS menu every
// step.
type MenuState struct {
	Selected int
	Level    string
	Best     float64
	Hint     string
}

// MainMenuUI is the clickable main menu. Keyboard and gamepad navigation
// stay in the ECS menu system; the widgets mirror its selection.
type MainMenuUI struct {
	UI *ebitenui.UI

	OnSelect func(opt MenuOption)

	buttons   [optionCount]*widget.Button
	bestLabel *widget.Label
	hintLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	state MenuState
}

func NewMainMenuUI(title string, background color.Color, onSelect func(opt MenuOption)) (*MainMenuUI, error) {
	ui := &MainMenuUI{OnSelect: onSelect}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(title, background)
	return ui, nil
}

func (ui *MainMenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
	return nil
}

func (ui *MainMenuUI) buildUI(title string, background color.Color) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
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

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for opt := OptionPlay; opt < optionCount; opt++ {
		ui.buttons[opt] = ui.newButton(opt)
		contentContainer.AddChild(ui.buttons[opt])
	}

	ui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.bestLabel)

	ui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	)
	contentContainer.AddChild(ui.hintLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.Sync(MenuState{})
}

func (ui *MainMenuUI) newButton(opt MenuOption) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text("", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 100, 255},
			Pressed:  color.RGBA{200, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(opt)
			}
		}),
	)
}

// Sync updates labels from the menu state.
func (ui *MainMenuUI) Sync(s MenuState) {
	ui.state = s
	for opt := OptionPlay; opt < optionCount; opt++ {
		label := OptionLabel(opt, s.Level)
		if int(opt) == s.Selected {
			label = "> " + label + " <"
		}
		if textWidget := ui.buttons[opt].Text(); textWidget != nil {
			textWidget.Label = label
		}
	}
	ui.bestLabel.Label = BestLabel(s.Best)
	ui.hintLabel.Label = s.Hint
}

// State returns the last synced state.
func (ui *MainMenuUI) State() MenuState {
	return ui.state
}

// OptionLabel is the button text of opt.
func OptionLabel(opt MenuOption, level string) string {
	switch opt {
	case OptionPlay:
		return "Play"
	case OptionLevel:
		if level == "" {
			return "Level: -"
		}
		return "Level: < " + level + " >"
	case OptionSettings:
		return "Settings"
	case OptionExit:
		return "Exit"
	}
	return ""
}

// BestLabel formats a best distance in tiles.
func BestLabel(best float64) string {
	if best <= 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("Best: %.1f tiles", best)
}

func (ui *MainMenuUI) Update() {
	ui.UI.Update()
}

func (ui *MainMenuUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
