// component/movement.go
package component

import (
	"rising-tides/pkg/curve"
	"rising-tides/pkg/hexmap"
)

// Motion — состояние движения лодки вдоль кривой.
// Изменяется только через system.MotionController.
type Motion struct {
	Position    hexmap.Point
	Orientation float64 // радианы, (-π, π]
	Progress    float64 // доля пройденной кривой, [0, 1]
	Speed       float64 // мировых единиц в секунду
	Curve       *curve.Curve
	IsMoving    bool
	Target      *hexmap.Hex
	Coord       hexmap.Hex   // текущий гекс, обновляется по прибытии
	Path        []hexmap.Hex // путь без стартового гекса
}

// NewMotion ставит лодку в центр гекса at в состоянии покоя
func NewMotion(at hexmap.Hex, hexSize, speed float64) *Motion {
	return &Motion{
		Position: at.ToWorld(hexSize),
		Speed:    speed,
		Coord:    at,
	}
}

// Bobbing — косметическое покачивание по вертикали
type Bobbing struct {
	Time   float64
	Offset float64
}
