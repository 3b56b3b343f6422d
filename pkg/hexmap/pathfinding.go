// pkg/hexmap/pathfinding.go
package hexmap

// Validator сообщает, можно ли находиться в гексе.
// Должен быть чистой функцией статической проходимости карты.
type Validator func(Hex) bool

type searchNode struct {
	hex    Hex
	g      int
	h      int
	f      int
	parent *searchNode
}

// FindPath ищет путь от start до goal по гексам, для которых isValid возвращает true.
// Возвращает путь без стартового гекса или nil, если пути нет
// (в том числе когда start или goal сами по себе недопустимы).
//
// Open set is scanned linearly and the first node with the smallest f wins.
// Tentative g is taken from the current node without adding the step cost,
// so in practice the search is ordered by the heuristic alone. Callers rely on
// the resulting path choice; keep it as is.
//
// isValid must reject everything outside some finite area, otherwise an
// unreachable goal keeps the search running forever.
func FindPath(start, goal Hex, isValid Validator) []Hex {
	if !isValid(start) || !isValid(goal) {
		return nil
	}

	startNode := &searchNode{hex: start, g: 0, h: start.Distance(goal)}
	startNode.f = startNode.g + startNode.h

	open := []*searchNode{startNode}
	closed := make(map[Hex]struct{})

	for len(open) > 0 {
		currentIndex := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[currentIndex].f {
				currentIndex = i
			}
		}
		current := open[currentIndex]
		open = append(open[:currentIndex], open[currentIndex+1:]...)

		if current.hex == goal {
			return reconstructPath(current)
		}

		closed[current.hex] = struct{}{}

		for _, neighbor := range current.hex.AllPossibleNeighbors() {
			if _, done := closed[neighbor]; done || !isValid(neighbor) {
				continue
			}

			tentativeG := current.g

			neighborNode := findOpen(open, neighbor)
			if neighborNode == nil {
				neighborNode = &searchNode{
					hex:    neighbor,
					g:      tentativeG,
					h:      neighbor.Distance(goal),
					parent: current,
				}
				neighborNode.f = neighborNode.g + neighborNode.h
				open = append(open, neighborNode)
			} else if tentativeG < neighborNode.g {
				neighborNode.g = tentativeG
				neighborNode.f = neighborNode.g + neighborNode.h
				neighborNode.parent = current
			}
		}
	}
	return nil // Нет пути
}

// AStar находит путь от start до goal по проходимым гексам карты
func AStar(start, goal Hex, hm *HexMap) []Hex {
	return FindPath(start, goal, hm.IsPassable)
}

func findOpen(open []*searchNode, hex Hex) *searchNode {
	for _, n := range open {
		if n.hex == hex {
			return n
		}
	}
	return nil
}

// reconstructPath разворачивает цепочку родителей и отбрасывает стартовый гекс
func reconstructPath(node *searchNode) []Hex {
	var reversed []Hex
	for n := node; n != nil; n = n.parent {
		reversed = append(reversed, n.hex)
	}
	path := make([]Hex, 0, len(reversed)-1)
	for i := len(reversed) - 2; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
