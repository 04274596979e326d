package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinged struct {
	N int
}

type ponged struct {
	N int
}

func TestPublishByType(t *testing.T) {
	var got []int
	Subscribe("test", func(ctx context.Context, event pinged) error {
		got = append(got, event.N)
		return nil
	})

	Publish(pinged{N: 1})
	Publish[any](pinged{N: 2})
	Publish(ponged{N: 3})

	assert.Equal(t, []int{1, 2}, got)
}

type tick struct {
	N int
}

func TestHub(t *testing.T) {
	hub := NewHub[tick]()

	c, unsubscribe := hub.Subscribe(context.Background())
	require.NoError(t, hub.Broadcast(context.Background(), tick{N: 1}))

	select {
	case event := <-c:
		assert.Equal(t, 1, event.N)
	default:
		require.Fail(t, "no event")
	}

	unsubscribe()
	require.NoError(t, hub.Broadcast(context.Background(), tick{N: 2}))
	assert.Len(t, c, 0)
}

type tock struct {
	N int
}

func TestForward(t *testing.T) {
	hub := NewHub[string]()
	Forward(hub, func(event tock) string {
		if event.N == 1 {
			return "one"
		}
		return "many"
	})

	c, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	Publish(tock{N: 1})
	assert.Equal(t, "one", <-c)
}

func TestHubDropsWhenFull(t *testing.T) {
	hub := NewHub[int]()
	c, unsubscribe := hub.Subscribe(context.Background())
	defer unsubscribe()

	for i := 0; i < cap(c)+4; i++ {
		require.NoError(t, hub.Broadcast(context.Background(), i))
	}
	assert.Len(t, c, cap(c))
	assert.Equal(t, 0, <-c)
}
