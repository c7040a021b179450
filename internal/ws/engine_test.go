package ws

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"race-circuit-backend/internal/database"
	"race-circuit-backend/internal/models"
	"race-circuit-backend/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type engineFixture struct {
	db     *gorm.DB
	hub    *Hub
	engine *Engine
	races  *services.RaceService
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	dsn := fmt.Sprintf("file:ws_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	hub := NewHub(zap.NewNop())
	races := services.NewRaceService(db, services.NewStatsService(db))
	return &engineFixture{
		db:     db,
		hub:    hub,
		engine: NewEngine(hub, races, zap.NewNop()),
		races:  races,
	}
}

func (fx *engineFixture) seedUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Email:        name + "@example.com",
		PasswordHash: "x",
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, fx.db.Create(&user).Error)
	return &user
}

func (fx *engineFixture) seedCircuit(t *testing.T, creator *models.User) *models.Circuit {
	t.Helper()
	circuit := models.Circuit{
		ID:          uuid.NewString(),
		Name:        "test circuit",
		CreatorID:   creator.ID,
		CreatorName: creator.Name,
		Distance:    5.2,
		IsPublic:    true,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, fx.db.Create(&circuit).Error)
	return &circuit
}

func decodeEvent(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &event))
	return event
}

// Full session flow: create, join, start, race, finish, leaderboard.
func TestRaceSessionScenario(t *testing.T) {
	fx := newEngineFixture(t)
	alice := fx.seedUser(t, "alice")
	bob := fx.seedUser(t, "bob")
	circuit := fx.seedCircuit(t, alice)

	race, err := fx.races.Create(alice, circuit.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, race.Participants)

	require.NoError(t, fx.races.Join(race.ID, bob))

	ca := NewClient(alice.ID, nil)
	cb := NewClient(bob.ID, nil)
	fx.hub.Register(ca)
	fx.hub.Register(cb)
	fx.engine.Dispatch(alice.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race.ID)))
	fx.engine.Dispatch(bob.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race.ID)))

	started, err := fx.races.Start(race.ID, alice.ID)
	require.NoError(t, err)
	fx.hub.BroadcastToRace(race.ID, NewRaceStarted(race.ID, *started.StartTime))

	// Both participants hear the start.
	assert.Equal(t, EventRaceStarted, decodeEvent(t, recvMsg(t, ca))["type"])
	assert.Equal(t, EventRaceStarted, decodeEvent(t, recvMsg(t, cb))["type"])

	// Bob streams a position; everyone in the room gets it, Bob included.
	fx.engine.Dispatch(bob.ID, []byte(fmt.Sprintf(
		`{"type":"position_update","race_id":%q,"latitude":48.85,"longitude":2.35,"speed":31.5}`, race.ID)))

	posA := decodeEvent(t, recvMsg(t, ca))
	assert.Equal(t, EventParticipantPosition, posA["type"])
	assert.Equal(t, bob.ID, posA["user_id"])
	position, ok := posA["position"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 48.85, position["latitude"])
	assert.Equal(t, 31.5, position["speed"])

	posB := decodeEvent(t, recvMsg(t, cb))
	assert.Equal(t, EventParticipantPosition, posB["type"])

	// Bob finishes.
	fx.engine.Dispatch(bob.ID, []byte(fmt.Sprintf(
		`{"type":"finish_race","race_id":%q,"final_time":300}`, race.ID)))

	finA := decodeEvent(t, recvMsg(t, ca))
	assert.Equal(t, EventParticipantFinished, finA["type"])
	assert.Equal(t, bob.ID, finA["user_id"])
	assert.Equal(t, 300.0, finA["final_time"])
	recvMsg(t, cb) // Bob's own copy

	// Leaderboard: Bob first at 300, Alice unfinished.
	standings, err := services.NewLeaderboardService(fx.db).Rank(race.ID)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, bob.ID, standings[0].UserID)
	require.NotNil(t, standings[0].FinalTime)
	assert.Equal(t, 300.0, *standings[0].FinalTime)
	assert.Equal(t, alice.ID, standings[1].UserID)
	assert.Nil(t, standings[1].FinalTime)

	// Alice finishes; the race completes and the room hears about it.
	fx.engine.Dispatch(alice.ID, []byte(fmt.Sprintf(
		`{"type":"finish_race","race_id":%q,"final_time":320}`, race.ID)))

	assert.Equal(t, EventParticipantFinished, decodeEvent(t, recvMsg(t, ca))["type"])
	assert.Equal(t, EventRaceCompleted, decodeEvent(t, recvMsg(t, ca))["type"])
	assert.Equal(t, EventParticipantFinished, decodeEvent(t, recvMsg(t, cb))["type"])
	assert.Equal(t, EventRaceCompleted, decodeEvent(t, recvMsg(t, cb))["type"])

	got, err := fx.races.Get(race.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RaceStatusCompleted, got.Status)
}

func TestPositionBroadcastStaysInRace(t *testing.T) {
	fx := newEngineFixture(t)
	alice := fx.seedUser(t, "alice")
	bob := fx.seedUser(t, "bob")
	carol := fx.seedUser(t, "carol")
	circuit := fx.seedCircuit(t, alice)

	race1, err := fx.races.Create(alice, circuit.ID)
	require.NoError(t, err)
	require.NoError(t, fx.races.Join(race1.ID, bob))
	race2, err := fx.races.Create(carol, circuit.ID)
	require.NoError(t, err)

	ca := NewClient(alice.ID, nil)
	cb := NewClient(bob.ID, nil)
	cc := NewClient(carol.ID, nil)
	fx.hub.Register(ca)
	fx.hub.Register(cb)
	fx.hub.Register(cc)
	fx.engine.Dispatch(alice.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race1.ID)))
	fx.engine.Dispatch(bob.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race1.ID)))
	fx.engine.Dispatch(carol.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race2.ID)))

	fx.engine.Dispatch(bob.ID, []byte(fmt.Sprintf(
		`{"type":"position_update","race_id":%q,"latitude":1,"longitude":2,"speed":3}`, race1.ID)))

	recvMsg(t, ca)
	recvMsg(t, cb)
	assertNoMsg(t, cc)
}

func TestPositionFromNonParticipantIsDropped(t *testing.T) {
	fx := newEngineFixture(t)
	alice := fx.seedUser(t, "alice")
	mallory := fx.seedUser(t, "mallory")
	circuit := fx.seedCircuit(t, alice)

	race, err := fx.races.Create(alice, circuit.ID)
	require.NoError(t, err)

	ca := NewClient(alice.ID, nil)
	cm := NewClient(mallory.ID, nil)
	fx.hub.Register(ca)
	fx.hub.Register(cm)
	fx.engine.Dispatch(alice.ID, []byte(fmt.Sprintf(`{"type":"join_race","race_id":%q}`, race.ID)))

	// Mallory never joined the race; no record, no broadcast.
	fx.engine.Dispatch(mallory.ID, []byte(fmt.Sprintf(
		`{"type":"position_update","race_id":%q,"latitude":1,"longitude":2,"speed":3}`, race.ID)))

	assertNoMsg(t, ca)
	assertNoMsg(t, cm)
}

func TestMalformedAndUnknownEventsAreIgnored(t *testing.T) {
	fx := newEngineFixture(t)
	alice := fx.seedUser(t, "alice")

	ca := NewClient(alice.ID, nil)
	fx.hub.Register(ca)

	fx.engine.Dispatch(alice.ID, []byte(`{not json`))
	fx.engine.Dispatch(alice.ID, []byte(`{"type":"teleport","race_id":"r1"}`))

	assertNoMsg(t, ca)
}
