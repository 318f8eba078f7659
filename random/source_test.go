package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	src := Fixed(0.25)
	assert.Equal(t, 0.25, src.Float64())
	assert.Equal(t, 0.25, src.Float64())
}

func TestSourceFunc(t *testing.T) {
	values := []float64{0.1, 0.2}
	i := 0
	src := SourceFunc(func() float64 {
		v := values[i%len(values)]
		i++
		return v
	})
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.2, src.Float64())
	assert.Equal(t, 0.1, src.Float64())
}

func TestNewSeededRange(t *testing.T) {
	src := NewSeeded(0)
	for i := 0; i < 1000; i++ {
		u := src.Float64()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

func TestNewLocked(t *testing.T) {
	src := NewLocked(NewSeeded(17))
	assert.Same(t, src, NewLocked(src))

	var wg sync.WaitGroup
	results := make(chan int, 800)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				v, err := Int(1, 100, src)
				assert.NoError(t, err)
				results <- v
			}
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for v := range results {
		count++
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}
	assert.Equal(t, 800, count)
}
