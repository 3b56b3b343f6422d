// internal/ui/speed_button.go
package ui

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpeedButton переключает множитель скорости симуляции. Число треугольников
// на кнопке растёт вместе с множителем.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	Scales        []float64
	Colors        []rl.Color
	CurrentState  int
	LastClickTime time.Time
}

func NewSpeedButton(x, y, size float32, scales []float64, colors []rl.Color) *SpeedButton {
	return &SpeedButton{
		X:      x,
		Y:      y,
		Size:   size,
		Scales: scales,
		Colors: colors,
	}
}

// Scale возвращает текущий множитель; 1, если множители не заданы.
func (b *SpeedButton) Scale() float64 {
	if len(b.Scales) == 0 {
		return 1
	}
	return b.Scales[b.CurrentState]
}

func (b *SpeedButton) Draw() {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	c := rl.White
	if len(b.Colors) > 0 {
		c = b.Colors[b.CurrentState%len(b.Colors)]
	}

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for i := 0; i <= b.CurrentState; i++ {
		shift := offset * float32(i)
		p1 := rl.NewVector2(b.X-width+shift, b.Y-height/2)
		p2 := rl.NewVector2(b.X+shift, b.Y)
		p3 := rl.NewVector2(b.X-width+shift, b.Y+height/2)
		rl.DrawTriangle(p1, p2, p3, c)
		rl.DrawTriangleLines(p1, p2, p3, rl.White)
	}
}

// IsClicked — попадание по кругу вокруг кнопки, форма у неё неровная
func (b *SpeedButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointCircle(mousePos, rl.NewVector2(b.X, b.Y), b.Size*1.5) &&
		rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// ToggleState переходит к следующему множителю и возвращает его
func (b *SpeedButton) ToggleState() float64 {
	if len(b.Scales) == 0 {
		return 1
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.Scales)
	b.LastClickTime = time.Now()
	return b.Scales[b.CurrentState]
}
