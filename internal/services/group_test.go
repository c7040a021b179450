package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupIncludesCreator(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	svc := NewGroupService(db)

	// Unknown ids and the creator's own id are skipped, not errors.
	group, err := svc.Create(alice, "sunday crew", []string{bob.ID, alice.ID, "no-such-user"})
	require.NoError(t, err)
	require.Len(t, group.Members, 2)
	assert.Equal(t, alice.ID, group.Members[0].UserID)
	assert.Equal(t, bob.ID, group.Members[1].UserID)
}

func TestListGroupsByMembership(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	svc := NewGroupService(db)

	_, err := svc.Create(alice, "with bob", []string{bob.ID})
	require.NoError(t, err)
	_, err = svc.Create(carol, "without bob", nil)
	require.NoError(t, err)

	groups, err := svc.List(bob.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "with bob", groups[0].Name)

	empty, err := svc.List(seedUser(t, db, "dave").ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
