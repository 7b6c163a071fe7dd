package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, PairKey("a", "b"), PairKey("b", "a"))
	assert.Equal(t, "a:b", PairKey("b", "a"))
	assert.NotEqual(t, PairKey("a", "b"), PairKey("a", "c"))
}

func TestRelationshipCounterpart(t *testing.T) {
	r := Relationship{RequesterID: "alice", ResponderID: "bob"}

	assert.Equal(t, "bob", r.Counterpart("alice"))
	assert.Equal(t, "alice", r.Counterpart("bob"))
}

func TestRelationshipStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusRefused.Valid())
	assert.False(t, RelationshipStatus("blocked").Valid())
}

func TestMergeInterests(t *testing.T) {
	p := Profile{Interests: []string{"go", "chess"}}

	p.MergeInterests([]string{"chess", "", "music", "go", "music"})

	assert.Equal(t, []string{"go", "chess", "music"}, []string(p.Interests))
}

func TestNormalizeID(t *testing.T) {
	id, ok := NormalizeID("3F1C9A52-7D0E-4A8E-9B8A-1F2E3D4C5B6A")
	assert.True(t, ok)
	assert.Equal(t, "3f1c9a52-7d0e-4a8e-9b8a-1f2e3d4c5b6a", id)

	_, ok = NormalizeID("")
	assert.False(t, ok)
	_, ok = NormalizeID("507f1f77bcf86cd799439011")
	assert.False(t, ok)
}
