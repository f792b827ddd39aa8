package itinerary

import (
	"fmt"
	"testing"
	"wandervoice/models"

	"github.com/stretchr/testify/require"
)

func entity(id, name string) map[string]any {
	return map[string]any{"id": id, "name": name}
}

func dayNames(st *Store, day int) []string {
	items := st.GetItemsByDay(day)
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}

func TestAddItemAssignsUniqueIDs(t *testing.T) {
	st := NewStore()

	a := st.AddItem(entity("x1", "Temple Tour"), models.SourceActivity, 1)
	b := st.AddItem(entity("x1", "Temple Tour"), models.SourceActivity, 1)

	require.NotEqual(t, a.ID, b.ID, "same source entity added twice must get distinct ids")
	require.Equal(t, 2, st.Len())
}

func TestAddItemClampsDayToOne(t *testing.T) {
	st := NewStore()

	it := st.AddItem(entity("x1", "Temple Tour"), models.SourceActivity, 0)

	require.Equal(t, 1, it.DayNumber)
	require.Len(t, st.GetItemsByDay(1), 1)
}

func TestGetItemsByDayTracksCurrentDay(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 2)
	st.AddItem(entity("r1", "Sea Salt"), models.SourceRestaurant, 1)

	require.Equal(t, []string{"Beach Walk", "Sea Salt"}, dayNames(st, 1))
	require.Equal(t, []string{"Sea View Hotel"}, dayNames(st, 2))
	require.Empty(t, st.GetItemsByDay(3))

	st.MoveItemToDay(a.ID, 2)
	require.Equal(t, []string{"Sea Salt"}, dayNames(st, 1))
	require.Equal(t, []string{"Sea View Hotel", "Beach Walk"}, dayNames(st, 2))

	st.RemoveItem(a.ID)
	require.Equal(t, []string{"Sea View Hotel"}, dayNames(st, 2))
	require.Equal(t, 2, st.Len())
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	st := NewStore()
	st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)

	st.RemoveItem("nope")

	require.Equal(t, 1, st.Len())
}

func TestMoveItemToDayAppendsAtEnd(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 2)
	st.AddItem(entity("p1", "Night Market"), models.SourcePlace, 2)

	st.MoveItemToDay(a.ID, 2)

	require.Equal(t, []string{"Sea View Hotel", "Night Market", "Beach Walk"}, dayNames(st, 2))
	require.Empty(t, st.GetItemsByDay(1))
}

func TestMoveItemRoundTripRestoresToEnd(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("r1", "Sea Salt"), models.SourceRestaurant, 1)

	st.MoveItemToDay(a.ID, 2)
	st.MoveItemToDay(a.ID, 1)

	// Back on day 1 at the end; never lost, never duplicated.
	require.Equal(t, []string{"Sea Salt", "Beach Walk"}, dayNames(st, 1))
	require.Equal(t, 2, st.Len())
}

func TestReorderItemWithinDay(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 1)
	st.AddItem(entity("r1", "Sea Salt"), models.SourceRestaurant, 1)

	st.ReorderItem(a.ID, 1, 2)

	require.Equal(t, []string{"Sea View Hotel", "Sea Salt", "Beach Walk"}, dayNames(st, 1))

	// Orders renumbered contiguous 0..k-1.
	for i, it := range st.GetItemsByDay(1) {
		require.Equal(t, i, it.Order)
	}
}

func TestReorderItemIsIdempotent(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 1)
	st.AddItem(entity("r1", "Sea Salt"), models.SourceRestaurant, 1)

	st.ReorderItem(a.ID, 1, 1)
	once := dayNames(st, 1)
	st.ReorderItem(a.ID, 1, 1)
	twice := dayNames(st, 1)

	require.Equal(t, once, twice)
	require.Equal(t, 3, st.Len())
}

func TestReorderItemAcrossDays(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 2)
	st.AddItem(entity("p1", "Night Market"), models.SourcePlace, 2)

	st.ReorderItem(a.ID, 2, 1)

	require.Empty(t, st.GetItemsByDay(1))
	require.Equal(t, []string{"Sea View Hotel", "Beach Walk", "Night Market"}, dayNames(st, 2))
}

func TestReorderOnlyRenumbersAffectedDay(t *testing.T) {
	st := NewStore()
	st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	b := st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 1)
	c := st.AddItem(entity("p1", "Night Market"), models.SourcePlace, 3)

	before := st.GetItemsByDay(3)
	st.ReorderItem(b.ID, 1, 0)
	after := st.GetItemsByDay(3)

	require.Equal(t, before, after)
	require.Equal(t, c.Order, after[0].Order)
}

func TestReorderClampsIndex(t *testing.T) {
	st := NewStore()
	a := st.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)
	st.AddItem(entity("h1", "Sea View Hotel"), models.SourceHotel, 1)

	st.ReorderItem(a.ID, 1, 99)
	require.Equal(t, []string{"Sea View Hotel", "Beach Walk"}, dayNames(st, 1))

	st.ReorderItem(a.ID, 1, -5)
	require.Equal(t, []string{"Beach Walk", "Sea View Hotel"}, dayNames(st, 1))
}

func TestDragAndDropScenario(t *testing.T) {
	st := NewStore()
	a := st.AddItem(map[string]any{"id": "a1", "name": "Beach Walk"}, models.SourceActivity, 1)
	st.AddItem(map[string]any{"id": "h1", "name": "Sea View Hotel"}, models.SourceHotel, 1)

	st.ReorderItem(a.ID, 1, 1)

	require.Equal(t, []string{"Sea View Hotel", "Beach Walk"}, dayNames(st, 1))
}

func TestClearEmptiesStore(t *testing.T) {
	st := NewStore()
	for i := 0; i < 5; i++ {
		st.AddItem(entity(fmt.Sprintf("e%d", i), "X"), models.SourcePlace, i+1)
	}

	st.Clear()

	require.Equal(t, 0, st.Len())
	require.Empty(t, st.GetItemsByDay(1))
}

func TestRegistryReturnsSameStorePerSession(t *testing.T) {
	reg := NewRegistry()

	s1 := reg.Get("sess-1")
	s1.AddItem(entity("a1", "Beach Walk"), models.SourceActivity, 1)

	require.Equal(t, 1, reg.Get("sess-1").Len())
	require.Equal(t, 0, reg.Get("sess-2").Len())

	reg.Drop("sess-1")
	require.Equal(t, 0, reg.Get("sess-1").Len())
}
