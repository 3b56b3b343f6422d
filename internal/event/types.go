// internal/event/types.go
package event

import (
	"rising-tides/internal/types"
	"rising-tides/pkg/hexmap"
)

const (
	BoatDeparted  EventType = "BoatDeparted"  // Лодка получила новый путь
	BoatArrived   EventType = "BoatArrived"   // Лодка дошла до конца пути
	RouteNotFound EventType = "RouteNotFound" // Путь до цели не найден
)

// BoatDepartedData — данные события BoatDeparted
type BoatDepartedData struct {
	Entity types.EntityID
	From   hexmap.Hex
	Target hexmap.Hex
	Path   []hexmap.Hex
}

// BoatArrivedData — данные события BoatArrived
type BoatArrivedData struct {
	Entity types.EntityID
	Coord  hexmap.Hex
}

// RouteNotFoundData — данные события RouteNotFound
type RouteNotFoundData struct {
	Entity types.EntityID
	From   hexmap.Hex
	Target hexmap.Hex
}
