package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	titleColor = color.RGBA{255, 215, 90, 255}
	textColor  = color.RGBA{255, 255, 255, 255}
	dimColor   = color.RGBA{160, 160, 170, 255}
)

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     color.RGBA{255, 255, 255, 255},
		Hover:    color.RGBA{255, 255, 200, 255},
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: color.RGBA{100, 100, 100, 255},
	}
}

// rootContainer fills the screen and centres a vertical column
func rootContainer(bg color.Color) (*widget.Container, *widget.Container) {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
	})
}
