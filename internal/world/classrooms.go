package world

import "fmt"

// Classroom layout settings.
const (
	classroomMinWidth = 6
	classroomMaxWidth = 12
	classroomBand     = 8 // depth of a classroom, wall to wall
	hallWidth         = 3
)

// side names the wall of a classroom that holds its door.
type side int

const (
	north side = iota
	south
	east
	west
)

// generateClassrooms lines both sides of a central east-west hallway with
// classrooms. Every classroom has a closed door onto the hallway and rows of
// desks; the stairs are at the west end of the hallway.
func generateClassrooms(m *Map) ([]Rect, error) {
	if m.Width < 20 || m.Height < 11 {
		return nil, fmt.Errorf("%w: classrooms need at least 20x11, got %dx%d",
			ErrInvalidGenerationParams, m.Width, m.Height)
	}
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}
	wall := MustTile(TileWall)

	top := m.Height/2 - 1
	hall := Rect{X1: 0, Y1: top - 1, X2: m.Width - 1, Y2: top + hallWidth}
	if err := hall.Outline(m, wall); err != nil {
		return nil, err
	}
	if err := hall.Fill(m, floor); err != nil {
		return nil, err
	}

	var rooms []Rect
	northRooms := m.roomRow(0, m.Width-1, func(x1, x2 int) Rect {
		return Rect{X1: x1, Y1: max(0, hall.Y1-classroomBand), X2: x2, Y2: hall.Y1}
	})
	southRooms := m.roomRow(0, m.Width-1, func(x1, x2 int) Rect {
		return Rect{X1: x1, Y1: hall.Y2, X2: x2, Y2: min(m.Height-1, hall.Y2+classroomBand)}
	})
	for _, r := range northRooms {
		if err := m.buildClassroom(r, south, floor, wall); err != nil {
			return nil, err
		}
	}
	for _, r := range southRooms {
		if err := m.buildClassroom(r, north, floor, wall); err != nil {
			return nil, err
		}
	}
	rooms = append(rooms, northRooms...)
	rooms = append(rooms, southRooms...)

	if err := m.placeStairs(hall.X1+1, hall.Y1+1+hallWidth/2); err != nil {
		return nil, err
	}
	return rooms, nil
}

// generateClassroomRing puts classrooms in bands along the map edges with a
// hallway ring inside them. The middle of the ring is an open air well edged
// with windows. The band corners stay empty.
func generateClassroomRing(m *Map) ([]Rect, error) {
	if m.Width < 40 || m.Height < 30 {
		return nil, fmt.Errorf("%w: classroom ring needs at least 40x30, got %dx%d",
			ErrInvalidGenerationParams, m.Width, m.Height)
	}
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}
	wall := MustTile(TileWall)
	window := MustTile(TileWindow)
	air := MustTile(TileAir)

	d := classroomBand
	outer := Rect{X1: d, Y1: d, X2: m.Width - 1 - d, Y2: m.Height - 1 - d}
	inner := Rect{X1: outer.X1 + hallWidth + 1, Y1: outer.Y1 + hallWidth + 1,
		X2: outer.X2 - hallWidth - 1, Y2: outer.Y2 - hallWidth - 1}

	if err := outer.Outline(m, wall); err != nil {
		return nil, err
	}
	if err := outer.Fill(m, floor); err != nil {
		return nil, err
	}
	if err := inner.Outline(m, window); err != nil {
		return nil, err
	}
	for _, corner := range []Point{{inner.X1, inner.Y1}, {inner.X2, inner.Y1}, {inner.X1, inner.Y2}, {inner.X2, inner.Y2}} {
		if err := m.SetKind(corner.X, corner.Y, wall); err != nil {
			return nil, err
		}
	}
	if err := inner.Fill(m, air); err != nil {
		return nil, err
	}

	type band struct {
		rooms []Rect
		door  side
	}
	bands := []band{
		{m.roomRow(outer.X1+1, outer.X2-1, func(x1, x2 int) Rect {
			return Rect{X1: x1, Y1: 0, X2: x2, Y2: outer.Y1}
		}), south},
		{m.roomRow(outer.X1+1, outer.X2-1, func(x1, x2 int) Rect {
			return Rect{X1: x1, Y1: outer.Y2, X2: x2, Y2: m.Height - 1}
		}), north},
		{m.roomRow(outer.Y1+1, outer.Y2-1, func(y1, y2 int) Rect {
			return Rect{X1: 0, Y1: y1, X2: outer.X1, Y2: y2}
		}), east},
		{m.roomRow(outer.Y1+1, outer.Y2-1, func(y1, y2 int) Rect {
			return Rect{X1: outer.X2, Y1: y1, X2: m.Width - 1, Y2: y2}
		}), west},
	}

	var rooms []Rect
	for _, b := range bands {
		for _, r := range b.rooms {
			if err := m.buildClassroom(r, b.door, floor, wall); err != nil {
				return nil, err
			}
		}
		rooms = append(rooms, b.rooms...)
	}

	if err := m.placeStairs(outer.X1+1, outer.Y1+1); err != nil {
		return nil, err
	}
	return rooms, nil
}

// roomRow lays rooms of random length side by side from lo to hi along one
// axis, leaving a one-cell gap between neighbours. rect builds the room from
// its start and end coordinate on that axis.
func (m *Map) roomRow(lo, hi int, rect func(a1, a2 int) Rect) []Rect {
	var rooms []Rect
	for a := lo; ; {
		length := m.rng.Int(classroomMinWidth, classroomMaxWidth)
		if a+length > hi {
			length = hi - a
		}
		if length < classroomMinWidth/2+1 {
			break
		}
		rooms = append(rooms, rect(a, a+length))
		a += length + 2
	}
	return rooms
}

// buildClassroom walls and floors room, sets a closed door in the middle of
// the wall on doorSide, and fills the room with desks. Desks sit on every
// other lane and never on the row along the door wall, so each lane leads to
// the door.
func (m *Map) buildClassroom(room Rect, doorSide side, floor, wall TileKind) error {
	if err := room.Outline(m, wall); err != nil {
		return err
	}
	if err := room.Fill(m, floor); err != nil {
		return err
	}

	cx, cy := room.Center()
	var door Point
	switch doorSide {
	case north:
		door = Point{X: cx, Y: room.Y1}
	case south:
		door = Point{X: cx, Y: room.Y2}
	case east:
		door = Point{X: room.X2, Y: cy}
	case west:
		door = Point{X: room.X1, Y: cy}
	}
	if err := m.SetKind(door.X, door.Y, MustTile(TileDoorClosed)); err != nil {
		return err
	}

	desk := MustTile(TileDesk)
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			var lane, span int
			var alongDoor bool
			switch doorSide {
			case north, south:
				lane, span = x-room.X1, room.Width()
				alongDoor = (doorSide == north && y == room.Y1+1) || (doorSide == south && y == room.Y2-1)
			default:
				lane, span = y-room.Y1, room.Height()
				alongDoor = (doorSide == west && x == room.X1+1) || (doorSide == east && x == room.X2-1)
			}
			if alongDoor || lane%2 != 0 || lane < 2 || lane > span-2 {
				continue
			}
			if err := m.SetKind(x, y, desk); err != nil {
				return err
			}
		}
	}
	return nil
}
