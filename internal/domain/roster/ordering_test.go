package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []Worker {
	return []Worker{
		{ID: "w1", Name: "Ana", Role: "Operaria", IsActive: true},
		{ID: "w2", Name: "Bruno", Role: "Operario", IsActive: true},
		{ID: "w3", Name: "Carla", Role: "Relevo", IsReliever: true, IsActive: true},
		{ID: "w4", Name: "Diego", Role: "Operario", IsActive: false},
	}
}

func ids(workers []Worker) []string {
	out := make([]string, 0, len(workers))
	for _, w := range workers {
		out = append(out, w.ID)
	}
	return out
}

func TestMove_Down(t *testing.T) {
	got := Move(testRoster(), "w1", "w3")
	assert.Equal(t, []string{"w2", "w1", "w3", "w4"}, ids(got))
}

func TestMove_Up(t *testing.T) {
	got := Move(testRoster(), "w4", "w2")
	assert.Equal(t, []string{"w1", "w4", "w2", "w3"}, ids(got))
}

func TestMove_SelfIsNoOp(t *testing.T) {
	original := testRoster()
	got := Move(original, "w2", "w2")
	assert.Equal(t, ids(original), ids(got))
}

func TestMove_UnknownIDIsNoOp(t *testing.T) {
	original := testRoster()

	assert.Equal(t, ids(original), ids(Move(original, "ghost", "w2")))
	assert.Equal(t, ids(original), ids(Move(original, "w2", "ghost")))
}

func TestMove_PreservesMembership(t *testing.T) {
	original := testRoster()
	got := Move(original, "w1", "w4")

	require.Len(t, got, len(original))
	for _, w := range original {
		assert.Contains(t, ids(got), w.ID)
	}
}

func TestMove_ThereAndBackRestoresOrder(t *testing.T) {
	original := testRoster()

	moved := Move(original, "w2", "w1")
	assert.Equal(t, []string{"w2", "w1", "w3", "w4"}, ids(moved))

	back := Move(moved, "w1", "w2")
	assert.Equal(t, ids(original), ids(back))
}

func TestMove_SameTargetTwiceIsStable(t *testing.T) {
	once := Move(testRoster(), "w1", "w3")
	assert.Equal(t, []string{"w2", "w1", "w3", "w4"}, ids(once))

	twice := Move(once, "w1", "w3")
	assert.Equal(t, ids(once), ids(twice))
}

func TestMove_BeforeImmediateSuccessorIsNoOp(t *testing.T) {
	original := testRoster()
	got := Move(original, "w1", "w2")
	assert.Equal(t, ids(original), ids(got))
}

func TestMove_DoesNotMutateInput(t *testing.T) {
	original := testRoster()
	_ = Move(original, "w1", "w3")
	assert.Equal(t, []string{"w1", "w2", "w3", "w4"}, ids(original))
}

func TestToggleArchive(t *testing.T) {
	original := testRoster()

	got := ToggleArchive(original, "w1")
	assert.False(t, got[0].IsActive)
	assert.Equal(t, ids(original), ids(got))

	// double toggle restores the original flag
	twice := ToggleArchive(got, "w1")
	assert.True(t, twice[0].IsActive)

	// other fields untouched
	assert.Equal(t, "Ana", got[0].Name)
	assert.True(t, got[1].IsActive)
}

func TestToggleArchive_UnknownIDIsNoOp(t *testing.T) {
	original := testRoster()
	got := ToggleArchive(original, "ghost")
	assert.Equal(t, original, got)
}

func TestAdd(t *testing.T) {
	original := testRoster()

	got, created, err := Add(original, WorkerDraft{Name: "Elena", Role: "Operaria"})
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, created.ID, got[4].ID)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, Palette[4%len(Palette)], created.Color)
}

func TestAdd_EmptyNameRejected(t *testing.T) {
	original := testRoster()

	got, _, err := Add(original, WorkerDraft{Name: "  ", Role: "Operaria"})
	assert.Error(t, err)
	assert.Len(t, got, len(original))
}

func TestAdd_EmptyRoleRejected(t *testing.T) {
	original := testRoster()

	_, _, err := Add(original, WorkerDraft{Name: "Elena"})
	assert.Error(t, err)
}

func TestAdd_ColorWrapsAroundPalette(t *testing.T) {
	workers := make([]Worker, len(Palette))
	got, created, err := Add(workers, WorkerDraft{Name: "Elena", Role: "Operaria"})
	require.NoError(t, err)
	assert.Equal(t, Palette[0], created.Color)
	assert.Len(t, got, len(Palette)+1)
}

func TestDelete(t *testing.T) {
	got := Delete(testRoster(), "w2")
	assert.Equal(t, []string{"w1", "w3", "w4"}, ids(got))

	// absent id
	same := Delete(testRoster(), "ghost")
	assert.Len(t, same, 4)
}

func TestVisible(t *testing.T) {
	active := Visible(testRoster(), false)
	assert.Equal(t, []string{"w1", "w2", "w3"}, ids(active))

	archived := Visible(testRoster(), true)
	assert.Equal(t, []string{"w4"}, ids(archived))
}
