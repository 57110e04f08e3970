package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker(t *testing.T) {
	t.Run("SeededAtPacked", func(t *testing.T) {
		tr := NewTracker()
		st := tr.Status()
		assert.Equal(t, 1, st.Step)
		assert.Equal(t, "Packed", st.Label)
		assert.Equal(t, "5 day(s) to delivery", st.ETA)
		assert.False(t, st.Delivered)
	})

	t.Run("AdvancesOneStepAtATime", func(t *testing.T) {
		tr := NewTracker()
		st := tr.Advance()
		assert.Equal(t, "Shipped", st.Label)
		st = tr.Advance()
		assert.Equal(t, "Out for Delivery", st.Label)
		assert.Equal(t, "1 day(s) to delivery", st.ETA)
	})

	t.Run("StopsAtDelivered", func(t *testing.T) {
		tr := NewTracker()
		for i := 0; i < 10; i++ {
			tr.Advance()
		}
		st := tr.Status()
		assert.Equal(t, "Delivered", st.Label)
		assert.True(t, st.Delivered)
		assert.Equal(t, "Package delivered", st.ETA)
	})

	t.Run("PerSessionStepper", func(t *testing.T) {
		stores := newTestStores(t)
		a := stores.Session("a").Tracking()
		b := stores.Session("b").Tracking()

		a.Advance()
		require.Equal(t, "Shipped", a.Status().Label)
		assert.Equal(t, "Packed", b.Status().Label)

		// The same session sees the same stepper.
		assert.Equal(t, "Shipped", stores.Session("a").Tracking().Status().Label)
	})
}
