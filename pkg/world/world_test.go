package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/dice"
	"github.com/jwebster45206/adventure-engine/pkg/item"
)

func testWorld() *World {
	w := New()
	w.AddLocation(NewLocation("Village", "A village.", "Forest", "Mountain"))
	w.AddLocation(NewLocation("Forest", "A forest.", "Village", "Cave"))
	w.AddLocation(NewLocation("Cave", "A cave.", "Forest"))
	w.AddLocation(NewLocation("Mountain", "A mountain.", "Village"))
	w.CurrentLocation = "Village"
	return w
}

func TestWorld_ChangeLocation(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		target string
		want   bool
	}{
		{name: "village to forest", from: "Village", target: "Forest", want: true},
		{name: "forest to cave", from: "Forest", target: "Cave", want: true},
		{name: "village to cave is not connected", from: "Village", target: "Cave", want: false},
		{name: "mountain to forest is not connected", from: "Mountain", target: "Forest", want: false},
		{name: "unknown target", from: "Village", target: "Beach", want: false},
		{name: "case sensitive names", from: "Village", target: "forest", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld()
			w.CurrentLocation = tt.from

			accessible := w.IsAccessible(tt.target)
			got := w.ChangeLocation(tt.target)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, accessible, got, "ChangeLocation must agree with IsAccessible")
			if got {
				assert.Equal(t, tt.target, w.CurrentLocation)
			} else {
				assert.Equal(t, tt.from, w.CurrentLocation, "failed move must not change location")
			}
		})
	}
}

func TestWorld_AsymmetricConnections(t *testing.T) {
	w := New()
	w.AddLocation(NewLocation("Cliff", "A cliff.", "Beach"))
	w.AddLocation(NewLocation("Beach", "A beach."))
	w.CurrentLocation = "Cliff"

	require.True(t, w.ChangeLocation("Beach"))
	assert.False(t, w.ChangeLocation("Cliff"), "connections are one-directional")
	assert.Equal(t, "Beach", w.CurrentLocation)
}

func TestWorld_AddLocationOverwrites(t *testing.T) {
	w := testWorld()
	w.AddLocation(NewLocation("Cave", "A different cave.", "Village"))

	cave, ok := w.Location("Cave")
	require.True(t, ok)
	assert.Equal(t, "A different cave.", cave.Description)
	assert.Equal(t, []string{"Village", "Forest", "Cave", "Mountain"}, w.AllLocationNames())
}

func TestWorld_Queries(t *testing.T) {
	w := testWorld()

	assert.Equal(t, "Village", w.Current().Name)
	assert.Equal(t, []string{"Forest", "Mountain"}, w.AvailableLocations())

	exits := w.AvailableLocations()
	exits[0] = "Moon"
	assert.Equal(t, "Forest", w.Current().Connections[0], "AvailableLocations returns a copy")
}

func TestWorld_CurrentPanicsOnBrokenInvariant(t *testing.T) {
	w := testWorld()
	w.CurrentLocation = "Nowhere"
	assert.Panics(t, func() { w.Current() })
}

func TestWorld_Flags(t *testing.T) {
	w := testWorld()
	assert.False(t, w.Flag(FlagHiddenPassage))

	w.SetFlag(FlagHiddenPassage)
	w.SetFlag(FlagHiddenPassage)
	assert.True(t, w.Flag(FlagHiddenPassage))

	snap := w.StateSnapshot()
	snap["other"] = true
	assert.False(t, w.Flag("other"), "snapshot must be a copy")
}

func TestWorld_ChangeWeather(t *testing.T) {
	w := testWorld()
	d := dice.NewSeeded(5)
	for i := 0; i < 50; i++ {
		assert.True(t, w.ChangeWeather(d).Valid())
	}
}

func TestLocation_Items(t *testing.T) {
	loc := NewLocation("Cave", "A cave.", "Forest")
	loc.AddItem(item.Item{Name: "torch"})
	loc.AddItem(item.Item{Name: "gemstone"})

	assert.True(t, loc.HasItem("Torch"))
	it, ok := loc.RemoveItem("TORCH")
	require.True(t, ok)
	assert.Equal(t, "torch", it.Name)
	assert.False(t, loc.HasItem("torch"))

	_, ok = loc.RemoveItem("torch")
	assert.False(t, ok)
}

func TestLocation_Connections(t *testing.T) {
	loc := NewLocation("Village", "A village.", "Forest")
	loc.AddConnection("Forest")
	loc.AddConnection("Mountain")
	assert.Equal(t, []string{"Forest", "Mountain"}, loc.Connections)

	assert.True(t, loc.RemoveConnection("Forest"))
	assert.False(t, loc.RemoveConnection("Forest"))
	assert.Equal(t, []string{"Mountain"}, loc.Connections)
}

func TestLocation_Light(t *testing.T) {
	loc := NewLocation("Cave", "A dark cave.")
	assert.True(t, loc.Light("It is now lit."))
	assert.False(t, loc.Light("It is now lit."))
	assert.Equal(t, "A dark cave. It is now lit.", loc.Description)
	assert.True(t, loc.Lit)

	reloaded := NewLocation("Cave", loc.Description)
	assert.True(t, reloaded.Light("It is now lit."))
	assert.Equal(t, "A dark cave. It is now lit.", reloaded.Description)
}

func TestParseWeather(t *testing.T) {
	w, err := ParseWeather(" Stormy ")
	require.NoError(t, err)
	assert.Equal(t, Stormy, w)
	assert.NotEmpty(t, w.Describe())

	_, err = ParseWeather("sunny")
	assert.Error(t, err)
	assert.Equal(t, "The weather is unremarkable.", Weather("sunny").Describe())
}
