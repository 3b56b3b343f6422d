package render

import (
	"fmt"
	"image/color"
	"math"

	"rising-tides/internal/config"
	"rising-tides/pkg/curve"
	"rising-tides/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// BoatView — всё, что нужно для отрисовки одной лодки
type BoatView struct {
	Label       string
	Selected    bool
	Position    hexmap.Point
	Orientation float64
	Bob         float64
	Curve       *curve.Curve
}

type HexRenderer struct {
	hexMap       *hexmap.HexMap
	hexSize      float64
	scale        float64
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	sortedHexes  []hexmap.Hex
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewHexRenderer(hexMap *hexmap.HexMap, hexSize, scale float64, screenWidth, screenHeight int) *HexRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	renderer := &HexRenderer{
		hexMap:       hexMap,
		hexSize:      hexSize,
		scale:        scale,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		sortedHexes:  hexMap.SortedHexes(),
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     basicfont.Face7x13,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}

	// Отрисовываем карту один раз при инициализации
	renderer.RenderMapImage()

	return renderer
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *HexRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(config.BackgroundColor)

	for _, hex := range r.sortedHexes {
		r.drawHexFill(r.mapImage, hex)
	}
	for _, hex := range r.sortedHexes {
		r.drawHexOutline(r.mapImage, hex)
	}
}

// Draw рисует карту, пути и лодки; hud — строки текста в левом верхнем углу
func (r *HexRenderer) Draw(screen *ebiten.Image, boats []BoatView, hud []string) {
	screen.DrawImage(r.mapImage, nil)

	for _, boat := range boats {
		if boat.Curve != nil {
			r.drawCurve(screen, boat.Curve)
		}
	}
	for _, boat := range boats {
		r.drawBoat(screen, boat)
	}

	for i, line := range hud {
		text.Draw(screen, line, r.fontFace, config.TextOffsetX, config.TextOffsetY+i*config.TextLineStep, config.TextLightColor)
	}
}

// toScreen переводит мировые координаты в экранные (центр карты — центр экрана)
func (r *HexRenderer) toScreen(p hexmap.Point) (float32, float32) {
	x := float64(r.screenWidth)/2 + p.X*r.scale
	y := float64(r.screenHeight)/2 + p.Z*r.scale
	return float32(x), float32(y)
}

// ScreenToHex — обратное преобразование к toScreen с округлением до гекса
func (r *HexRenderer) ScreenToHex(x, y int) hexmap.Hex {
	p := hexmap.Point{
		X: (float64(x) - float64(r.screenWidth)/2) / r.scale,
		Z: (float64(y) - float64(r.screenHeight)/2) / r.scale,
	}
	return hexmap.WorldToHex(p, r.hexSize)
}

func (r *HexRenderer) hexPath(hex hexmap.Hex) vector.Path {
	cx, cy := r.toScreen(hex.ToWorld(r.hexSize))
	size := r.hexSize * r.scale

	path := vector.Path{}
	for i := 0; i < 6; i++ {
		angle := math.Pi/3*float64(i) + math.Pi/6
		px := float64(cx) + size*math.Cos(angle)
		py := float64(cy) + size*math.Sin(angle)
		if i == 0 {
			path.MoveTo(float32(px), float32(py))
		} else {
			path.LineTo(float32(px), float32(py))
		}
	}
	path.Close()
	return path
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, hex hexmap.Hex) {
	path := r.hexPath(hex)
	region, _ := r.hexMap.RegionAt(hex)
	fillColor := config.RegionColor(int(region))

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	tintVertices(r.fillVs, fillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if hex == r.hexMap.Port {
		cx, cy := r.toScreen(hex.ToWorld(r.hexSize))
		label := fmt.Sprintf("%d,%d", hex.Q, hex.R)
		bounds := text.BoundString(r.fontFace, label)
		text.Draw(target, label, r.fontFace, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, config.TextLightColor)
	}
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, hex hexmap.Hex) {
	path := r.hexPath(hex)
	region, _ := r.hexMap.RegionAt(hex)

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: float32(config.StrokeWidth),
	})
	tintVertices(r.strokeVs, LightenColor(config.RegionColor(int(region)), 40))
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawCurve рисует оставшийся путь ломаной по точкам кривой
func (r *HexRenderer) drawCurve(screen *ebiten.Image, c *curve.Curve) {
	const steps = 48
	prev, _ := c.PointAt(0)
	for i := 1; i <= steps; i++ {
		next, _ := c.PointAt(float64(i) / steps)
		x0, y0 := r.toScreen(prev)
		x1, y1 := r.toScreen(next)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, config.PathColor, true)
		prev = next
	}
	end := c.End()
	ex, ey := r.toScreen(end)
	vector.DrawFilledCircle(screen, ex, ey, 3, config.PathColor, true)
}

func (r *HexRenderer) drawBoat(screen *ebiten.Image, boat BoatView) {
	// Ориентация отсчитывается так, что нос лодки смотрит вдоль +Z модели
	heading := boat.Orientation + math.Pi/2
	fwd := hexmap.Point{X: math.Cos(heading), Z: math.Sin(heading)}
	side := hexmap.Point{X: -fwd.Z, Z: fwd.X}

	half := config.BoatLength / 2
	lift := hexmap.Point{Z: -boat.Bob}
	center := boat.Position.Add(lift)
	nose := center.Add(fwd.Scale(half))
	left := center.Sub(fwd.Scale(half)).Add(side.Scale(half * 0.6))
	right := center.Sub(fwd.Scale(half)).Sub(side.Scale(half * 0.6))

	path := vector.Path{}
	nx, ny := r.toScreen(nose)
	lx, ly := r.toScreen(left)
	rx, ry := r.toScreen(right)
	path.MoveTo(nx, ny)
	path.LineTo(lx, ly)
	path.LineTo(rx, ry)
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	hull := config.BoatColor
	if boat.Selected {
		hull = LightenColor(hull, 80)
	}
	tintVertices(r.fillVs, hull)
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	if boat.Label != "" {
		cx, cy := r.toScreen(center)
		text.Draw(screen, boat.Label, r.fontFace, int(cx)+8, int(cy)-8, config.TextLightColor)
	}
}

func tintVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
