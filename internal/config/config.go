// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSize      = 1.0  // мировых единиц от центра гекса до вершины
	RenderScale  = 22.0 // пикселей на мировую единицу в 2D-просмотрщике
	MapRadius    = 16
	MaxDeltaTime = 0.06

	RotationSmoothing  = 10.0 // множитель dt в коэффициенте поворота min(1, dt*k)
	BobRate            = 2.0  // скорость накопления фазы покачивания
	BobAmplitude       = 0.05
	BobSecondAmplitude = 0.02
	BobSecondFrequency = 1.5
	SplineSamples      = 10

	DefaultCurveMode = "spline"
	DefaultEasing    = "sineInOut"

	ShipDefinitionsPath = "assets/data/ships.json"
	MapDefinitionPath   = "assets/data/map.json" // нет файла — карта генерируется

	Seed = 0 // 0 — сид от текущего времени

	StrokeWidth  = 1.5
	BoatLength   = 0.9
	TextOffsetX  = 10
	TextOffsetY  = 20
	TextLineStep = 16
)

var (
	BackgroundColor = color.RGBA{10, 14, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	BoatColor       = color.RGBA{250, 235, 200, 255}
	PathColor       = color.RGBA{255, 255, 0, 160}
	UnpaintedColor  = color.RGBA{60, 60, 60, 255}

	// Отладочные цвета регионов, индекс — RegionType
	RegionColors = []color.RGBA{
		{60, 60, 60, 255},       // Unpainted
		{0x8B, 0x45, 0x13, 255}, // Port
		{0x22, 0x8B, 0x22, 255}, // Terrain
		{0xF4, 0xA4, 0x60, 255}, // Coastal
		{0x87, 0xCE, 0xEB, 255}, // Shallow
		{0x46, 0x82, 0xB4, 255}, // Oceanic
		{0x19, 0x19, 0x70, 255}, // Abyssal
		{0x00, 0x00, 0x80, 255}, // Hadal
		{0xDC, 0x14, 0x3C, 255}, // Volcanic
		{0x55, 0x6B, 0x2F, 255}, // Mangrove
		{0xB0, 0xE0, 0xE6, 255}, // Icy
		{0xFF, 0x7F, 0x50, 255}, // Reef
	}
)

// RegionColor возвращает цвет региона или UnpaintedColor для неизвестного id
func RegionColor(region int) color.RGBA {
	if region < 0 || region >= len(RegionColors) {
		return UnpaintedColor
	}
	return RegionColors[region]
}
