package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts concurrent episodes", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 50)
		c.SetTreeReset(true)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 25; j++ {
					c.AddEpisode()
					if j%5 == 0 {
						c.AddFullPlayout()
					}
				}
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 50, m.Cutoff)
		require.Equal(t, 100, m.Episodes)
		require.Equal(t, 20, m.FullPlayouts)
		require.True(t, m.IsTreeReset)
	})

	t.Run("start clears the previous search", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 10)
		c.AddEpisode()
		c.SetTreeReset(true)

		c.Start(2, 10)
		m := c.Complete()
		require.Zero(t, m.Episodes)
		require.False(t, m.IsTreeReset)
		require.Equal(t, 2, m.Goroutines)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(8, 10)
		c.AddEpisode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
