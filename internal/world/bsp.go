package world

import "fmt"

// bspNode is a region of the map in the partition tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Rect
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// generatePartitioned packs rooms side by side. The map is split into at
// most MaxRooms regions, each region gets one room that stays a cell clear
// of the region's far edges, and sibling regions are joined by corridors.
func generatePartitioned(m *Map) ([]Rect, error) {
	p, err := m.roomParams()
	if err != nil {
		return nil, err
	}
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}

	root := &bspNode{x: 0, y: 0, width: m.Width, height: m.Height}
	m.partition(root, p)

	var rooms []Rect
	if err := m.createRooms(root, p, floor, &rooms); err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no region large enough for a %d-wide room",
			ErrMapGenerationFailed, p.RoomMinSize)
	}

	m.connectRooms(root, floor)

	if err := m.placeStairsInRoom(rooms[0]); err != nil {
		return nil, err
	}
	return rooms, nil
}

// partition splits regions breadth first until none can be split or the
// number of leaves reaches MaxRooms.
func (m *Map) partition(root *bspNode, p GenParams) {
	minLeaf := p.RoomMinSize + 2
	leaves := 1
	queue := []*bspNode{root}

	for len(queue) > 0 && leaves < p.MaxRooms {
		node := queue[0]
		queue = queue[1:]

		if !m.splitNode(node, minLeaf) {
			continue
		}
		leaves++
		queue = append(queue, node.left, node.right)
	}
}

// splitNode cuts node in two across its longer side. It returns false if
// neither side is long enough for two leaves.
func (m *Map) splitNode(node *bspNode, minLeaf int) bool {
	canSplitX := node.width >= minLeaf*2
	canSplitY := node.height >= minLeaf*2

	var vertical bool
	switch {
	case canSplitX && (node.width > node.height || !canSplitY):
		vertical = true
	case canSplitY:
		vertical = false
	default:
		return false
	}

	if vertical {
		cut := m.rng.Int(minLeaf, node.width-minLeaf)
		node.left = &bspNode{x: node.x, y: node.y, width: cut, height: node.height}
		node.right = &bspNode{x: node.x + cut, y: node.y, width: node.width - cut, height: node.height}
	} else {
		cut := m.rng.Int(minLeaf, node.height-minLeaf)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: cut}
		node.right = &bspNode{x: node.x, y: node.y + cut, width: node.width, height: node.height - cut}
	}
	return true
}

// createRooms places one room in every leaf, left to right in tree order.
// A room spans at most width-2 so its far wall stays off the next region.
func (m *Map) createRooms(node *bspNode, p GenParams, floor TileKind, rooms *[]Rect) error {
	if node == nil {
		return nil
	}
	if !node.isLeaf() {
		if err := m.createRooms(node.left, p, floor, rooms); err != nil {
			return err
		}
		return m.createRooms(node.right, p, floor, rooms)
	}

	maxW := min(p.RoomMaxSize, node.width-2)
	maxH := min(p.RoomMaxSize, node.height-2)
	if maxW < p.RoomMinSize || maxH < p.RoomMinSize {
		return nil
	}

	w := m.rng.Int(p.RoomMinSize, maxW)
	h := m.rng.Int(p.RoomMinSize, maxH)
	x := m.rng.Int(node.x, node.x+node.width-2-w)
	y := m.rng.Int(node.y, node.y+node.height-2-h)

	room := NewRect(x, y, w, h)
	if err := room.Fill(m, floor); err != nil {
		return err
	}
	node.room = &room
	*rooms = append(*rooms, room)
	return nil
}

// connectRooms joins a room of each subtree at every split, bottom up.
func (m *Map) connectRooms(node *bspNode, floor TileKind) {
	if node == nil || node.isLeaf() {
		return
	}

	m.connectRooms(node.left, floor)
	m.connectRooms(node.right, floor)

	leftRoom := firstRoom(node.left)
	rightRoom := firstRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		x1, y1 := leftRoom.Center()
		x2, y2 := rightRoom.Center()
		m.carveCorridor(x1, y1, x2, y2, floor)
	}
}

// firstRoom returns the leftmost room in a subtree, or nil.
func firstRoom(node *bspNode) *Rect {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := firstRoom(node.left); room != nil {
		return room
	}
	return firstRoom(node.right)
}
