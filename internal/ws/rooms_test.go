package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomsCreatedLazily(t *testing.T) {
	rs := NewRoomSet()

	assert.Empty(t, rs.Members("r1"))

	rs.Join("r1", "u1")
	assert.Equal(t, []string{"u1"}, rs.Members("r1"))
}

func TestJoinIsIdempotent(t *testing.T) {
	rs := NewRoomSet()

	rs.Join("r1", "u1")
	rs.Join("r1", "u1")
	assert.Len(t, rs.Members("r1"), 1)
}

func TestLeaveAbsentIsNoop(t *testing.T) {
	rs := NewRoomSet()

	rs.Leave("r1", "u1")
	rs.Join("r1", "u1")
	rs.Leave("r1", "u2")
	assert.Equal(t, []string{"u1"}, rs.Members("r1"))

	rs.Leave("r1", "u1")
	assert.Empty(t, rs.Members("r1"))
}

func TestRoomsAreIndependent(t *testing.T) {
	rs := NewRoomSet()

	rs.Join("r1", "u1")
	rs.Join("r2", "u2")

	assert.Equal(t, []string{"u1"}, rs.Members("r1"))
	assert.Equal(t, []string{"u2"}, rs.Members("r2"))
}

func TestMembersIsASnapshot(t *testing.T) {
	rs := NewRoomSet()
	rs.Join("r1", "u1")

	snapshot := rs.Members("r1")
	rs.Join("r1", "u2")

	assert.Len(t, snapshot, 1)
	assert.Len(t, rs.Members("r1"), 2)
}
