package msg

import (
	"errors"
	"sync"
	"testing"

	"github.com/DeluxeOwl/zmsg/internal/native"
	"github.com/stretchr/testify/require"
)

// The runtime assigns routing ids on delivery; this simulates that
// side of the boundary, which has no public constructor on purpose.
func deliverWithRoutingID(t *testing.T, id uint32) *Msg {
	t.Helper()

	m := FromString("delivered")
	rc := m.buf.SetRoutingID(id)
	require.Equal(t, 0, rc)
	return m
}

func TestRoutingID_RoundTripsThroughReply(t *testing.T) {
	received := deliverWithRoutingID(t, 99)
	defer received.Close()

	id, ok := received.RoutingID()
	require.True(t, ok)

	// Route a reply back to the same client.
	reply := New()
	defer reply.Close()

	require.NoError(t, reply.SetRoutingID(id))

	got, ok := reply.RoutingID()
	require.True(t, ok)
	require.Equal(t, id, got)
}

func TestMore_ReflectsTransportFlag(t *testing.T) {
	m := FromString("part 1 of 2")
	defer m.Close()

	require.Equal(t, 0, m.buf.SetMore(true))
	require.True(t, m.More())
}

func countCloses(t *testing.T) (map[*native.Buffer]int, func()) {
	t.Helper()

	closes := make(map[*native.Buffer]int)
	prev := native.SetTrace(func(op string, b *native.Buffer) {
		if op == "close" {
			closes[b]++
		}
	})
	return closes, func() { native.SetTrace(prev) }
}

func TestClose_ExactlyOncePerHandle(t *testing.T) {
	closes, restore := countCloses(t)
	defer restore()

	m := FromString("x")
	handle := m.buf

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	require.Equal(t, 1, closes[handle])
}

func TestClose_RunsOnEarlyReturnPaths(t *testing.T) {
	closes, restore := countCloses(t)
	defer restore()

	failAfterConstruction := func() (err error) {
		m := FromString("doomed")
		defer m.Close()

		return errors.New("downstream failure")
	}

	require.Error(t, failAfterConstruction())
	require.Len(t, closes, 1)
	for _, n := range closes {
		require.Equal(t, 1, n)
	}
}

func TestClose_EveryConstructorPairsWithOneClose(t *testing.T) {
	closes, restore := countCloses(t)
	defer restore()

	before := native.Live()

	src := FromString("src")

	build := []func() *Msg{
		New,
		func() *Msg { return WithSize(8) },
		func() *Msg { return FromBytes([]byte("b")) },
		func() *Msg { return FromString("s") },
		func() *Msg { return FromOwnedBytes([]byte("o")) },
		src.Clone,
	}

	handles := make([]*native.Buffer, 0, len(build)+1)
	for _, construct := range build {
		m := construct()
		handles = append(handles, m.buf)
		require.NoError(t, m.Close())
	}

	handles = append(handles, src.buf)
	require.NoError(t, src.Close())

	for _, h := range handles {
		require.Equal(t, 1, closes[h])
	}

	require.Equal(t, before, native.Live(), "every constructed handle was released")
}

func TestOwnership_MovesBetweenGoroutines(t *testing.T) {
	before := native.Live()

	transfers := make(chan *Msg)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for m := range transfers {
			// This goroutine now owns the message and is the one
			// that releases it.
			_ = m.Bytes()
			_ = m.Close()
		}
	}()

	for range 10 {
		transfers <- FromString("moved")
	}
	close(transfers)
	wg.Wait()

	require.Equal(t, before, native.Live())
}
