package machine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState string

const (
	statePending   testState = "Pending"
	stateSubmitted testState = "Submitted"
	stateCanceled  testState = "Canceled"
	stateDone      testState = "Done"
)

func newTestMachine(initial testState) *StateMachine[testState] {
	return New(initial,
		From(statePending).To(stateSubmitted),
		From(stateSubmitted).To(stateDone, stateCanceled),
	)
}

func TestToState(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		m := newTestMachine(statePending)
		assert.Len(t, m.transitions, 2)

		err := m.ToState(stateSubmitted)
		assert.NoError(t, err)
		assert.Equal(t, statePending, m.Current(), "ToState does not move the machine")
	})

	t.Run("invalid transition", func(t *testing.T) {
		m := newTestMachine(stateSubmitted)

		err := m.ToState(statePending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, stateSubmitted, m.Current())
	})
}

func TestTransition(t *testing.T) {
	m := newTestMachine(statePending)

	require.NoError(t, m.Transition(stateSubmitted))
	assert.Equal(t, stateSubmitted, m.Current())

	require.NoError(t, m.Transition(stateDone))
	assert.Equal(t, stateDone, m.Current())

	err := m.Transition(stateCanceled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "Done -> Canceled")
	assert.Equal(t, stateDone, m.Current())
}

func TestTransitionConcurrent(t *testing.T) {
	m := newTestMachine(stateSubmitted)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Transition(stateDone) == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
	assert.Equal(t, stateDone, m.Current())
}
