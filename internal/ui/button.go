// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToggleButton — прямоугольная кнопка, перебирающая подписи по кругу
type ToggleButton struct {
	Rect       rl.Rectangle
	Labels     []string
	Current    int
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	FontSize   int32
}

// NewToggleButton создает кнопку с набором состояний; начальное состояние — первое.
func NewToggleButton(rect rl.Rectangle, labels ...string) *ToggleButton {
	return &ToggleButton{
		Rect:       rect,
		Labels:     labels,
		TextColor:  rl.Black,
		BgColor:    rl.LightGray,
		HoverColor: rl.Gray,
		FontSize:   20,
	}
}

// Label возвращает подпись текущего состояния.
func (b *ToggleButton) Label() string {
	if len(b.Labels) == 0 {
		return ""
	}
	return b.Labels[b.Current]
}

// Select выставляет состояние по подписи; false, если такой нет.
func (b *ToggleButton) Select(label string) bool {
	for i, l := range b.Labels {
		if l == label {
			b.Current = i
			return true
		}
	}
	return false
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *ToggleButton) Contains(pos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pos, b.Rect)
}

// Toggle переключает на следующее состояние и возвращает его подпись.
func (b *ToggleButton) Toggle() string {
	if len(b.Labels) == 0 {
		return ""
	}
	b.Current = (b.Current + 1) % len(b.Labels)
	return b.Labels[b.Current]
}

func (b *ToggleButton) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if b.Contains(mousePos) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	label := b.Label()
	textWidth := rl.MeasureText(label, b.FontSize)
	textX := int32(b.Rect.X) + (int32(b.Rect.Width)-textWidth)/2
	textY := int32(b.Rect.Y) + (int32(b.Rect.Height)-b.FontSize)/2
	rl.DrawText(label, textX, textY, b.FontSize, b.TextColor)
}
