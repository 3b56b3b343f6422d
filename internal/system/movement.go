// internal/system/movement.go
package system

import (
	"math"

	"rising-tides/internal/component"
	"rising-tides/internal/config"
	"rising-tides/internal/entity"
	"rising-tides/internal/event"
	"rising-tides/internal/utils"
	"rising-tides/pkg/curve"
	"rising-tides/pkg/easing"
	"rising-tides/pkg/hexmap"
	mathutil "rising-tides/pkg/utils"
)

// Sample — то, что получает слой отрисовки после каждого тика
type Sample struct {
	Position    hexmap.Point
	Orientation float64
	Progress    float64
	Arrived     bool
	Coord       hexmap.Hex
}

// MotionController двигает лодку вдоль назначенной кривой.
type MotionController struct {
	Ease              easing.Func
	RotationSmoothing float64
	BobRate           float64
}

// NewMotionController создаёт контроллер с параметрами из config
func NewMotionController() *MotionController {
	ease, ok := easing.ByName(config.DefaultEasing)
	if !ok {
		ease = easing.SineInOut
	}
	return &MotionController{
		Ease:              ease,
		RotationSmoothing: config.RotationSmoothing,
		BobRate:           config.BobRate,
	}
}

// AssignPath starts motion along c towards the last hex of path.
// Any motion in progress is dropped. A nil curve or an empty path leaves m untouched.
func (mc *MotionController) AssignPath(m *component.Motion, c *curve.Curve, path []hexmap.Hex) bool {
	if c == nil || len(path) == 0 {
		return false
	}
	target := path[len(path)-1]
	m.Curve = c
	m.Path = append([]hexmap.Hex(nil), path...)
	m.Target = &target
	m.Progress = 0
	m.IsMoving = true
	return true
}

// Advance moves m forward by dt seconds and returns the resulting sample.
// Idle motions are not changed.
func (mc *MotionController) Advance(m *component.Motion, dt float64) Sample {
	if !m.IsMoving || m.Curve == nil {
		return SampleOf(m)
	}
	if dt < 0 {
		dt = 0
	}

	if m.Curve.Degenerate() {
		m.Progress = 1
	} else {
		m.Progress = mathutil.Clamp01(m.Progress + dt*m.Speed/m.Curve.TotalLength)
	}

	eased := mc.ease(m.Progress)
	pos, tangent := m.Curve.PointAt(eased)
	m.Position = pos

	if tangent.X != 0 || tangent.Z != 0 {
		// "Вперёд" у модели лодки — это +Z
		targetRotation := math.Atan2(tangent.Z, tangent.X) - math.Pi/2
		blend := math.Min(1, dt*mc.RotationSmoothing)
		m.Orientation = utils.LerpAngle(m.Orientation, targetRotation, blend)
	}

	if m.Progress < 1 {
		return SampleOf(m)
	}

	m.Position = m.Curve.End()
	if m.Target != nil {
		m.Coord = *m.Target
	}
	m.IsMoving = false
	m.Progress = 0
	m.Curve = nil
	m.Path = nil
	m.Target = nil

	sample := SampleOf(m)
	sample.Progress = 1
	sample.Arrived = true
	return sample
}

func (mc *MotionController) ease(t float64) float64 {
	if mc.Ease == nil {
		return easing.SineInOut(t)
	}
	return mathutil.Clamp01(mc.Ease(t))
}

// UpdateBobbing двигает фазу покачивания; работает всегда, независимо от движения
func (mc *MotionController) UpdateBobbing(b *component.Bobbing, dt float64) float64 {
	b.Time += dt * mc.BobRate
	b.Offset = math.Sin(b.Time)*config.BobAmplitude +
		math.Sin(b.Time*config.BobSecondFrequency)*config.BobSecondAmplitude
	return b.Offset
}

// SampleOf снимает текущее состояние без изменения
func SampleOf(m *component.Motion) Sample {
	return Sample{
		Position:    m.Position,
		Orientation: m.Orientation,
		Progress:    m.Progress,
		Coord:       m.Coord,
	}
}

// MotionSystem обновляет все лодки за кадр
type MotionSystem struct {
	ecs        *entity.ECS
	controller *MotionController
	dispatcher *event.Dispatcher
}

func NewMotionSystem(ecs *entity.ECS, controller *MotionController, dispatcher *event.Dispatcher) *MotionSystem {
	if controller == nil {
		controller = NewMotionController()
	}
	return &MotionSystem{ecs: ecs, controller: controller, dispatcher: dispatcher}
}

// Controller возвращает контроллер, которым пользуется система
func (s *MotionSystem) Controller() *MotionController {
	return s.controller
}

func (s *MotionSystem) Update(deltaTime float64) {
	s.ecs.GameTime += deltaTime
	for _, id := range s.ecs.Boats() {
		sample := s.controller.Advance(s.ecs.Motions[id], deltaTime)
		if sample.Arrived && s.dispatcher != nil {
			s.dispatcher.Dispatch(event.Event{
				Type: event.BoatArrived,
				Data: event.BoatArrivedData{Entity: id, Coord: sample.Coord},
			})
		}
	}
	for _, bob := range s.ecs.Bobbings {
		s.controller.UpdateBobbing(bob, deltaTime)
	}
}
