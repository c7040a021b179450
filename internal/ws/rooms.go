package ws

import "sync"

// RoomSet tracks live race-room membership for broadcast fan-out.
// Rooms come into being on first join; empty rooms are left to linger,
// that is a housekeeping concern, not a correctness one.
type RoomSet struct {
	mu    sync.RWMutex
	rooms map[string]map[string]struct{}
}

func NewRoomSet() *RoomSet {
	return &RoomSet{rooms: make(map[string]map[string]struct{})}
}

func (rs *RoomSet) Join(raceID, userID string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	room, ok := rs.rooms[raceID]
	if !ok {
		room = make(map[string]struct{})
		rs.rooms[raceID] = room
	}
	room[userID] = struct{}{}
}

func (rs *RoomSet) Leave(raceID, userID string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if room, ok := rs.rooms[raceID]; ok {
		delete(room, userID)
	}
}

// Members returns a snapshot of the room. Joins and leaves racing with
// the call may or may not be reflected.
func (rs *RoomSet) Members(raceID string) []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	room := rs.rooms[raceID]
	members := make([]string, 0, len(room))
	for userID := range room {
		members = append(members, userID)
	}
	return members
}
