package world

import "fmt"

// generateRoomsAndCorridors is the standard roguelike dungeon. Random rooms
// are tried MaxRooms times; each one that does not touch an earlier room is
// carved and joined to the previous accepted room by an L-shaped corridor.
//
// The draw order per attempt is width, height, x, y, then (from the second
// accepted room on) the corridor coin. After the loop the stairs are drawn
// inside the first room. Changing this order changes every seeded map.
func generateRoomsAndCorridors(m *Map) ([]Rect, error) {
	p, err := m.roomParams()
	if err != nil {
		return nil, err
	}
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}

	var rooms []Rect
	for range p.MaxRooms {
		w := m.rng.Int(p.RoomMinSize, p.RoomMaxSize)
		h := m.rng.Int(p.RoomMinSize, p.RoomMaxSize)
		x := m.rng.Int(0, m.Width-w-1)
		y := m.rng.Int(0, m.Height-h-1)

		candidate := NewRect(x, y, w, h)
		if intersectsAny(candidate, rooms) {
			continue
		}

		if err := candidate.Fill(m, floor); err != nil {
			return nil, err
		}

		if len(rooms) > 0 {
			prevX, prevY := rooms[len(rooms)-1].Center()
			newX, newY := candidate.Center()
			m.carveCorridor(prevX, prevY, newX, newY, floor)
		}

		rooms = append(rooms, candidate)
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no room accepted in %d attempts", ErrMapGenerationFailed, p.MaxRooms)
	}

	if err := m.placeStairsInRoom(rooms[0]); err != nil {
		return nil, err
	}
	return rooms, nil
}

// intersectsAny reports whether candidate intersects any of rooms.
func intersectsAny(candidate Shape, rooms []Rect) bool {
	for _, other := range rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}
