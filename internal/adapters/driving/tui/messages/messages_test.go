package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

// Fixture nuclides with mass excesses from the 2016 table.
var (
	testProton = &domain.Nuclide{
		Label: "p", ExcitationLevel: "0", MassNumber: 1, AtomicNumber: 1,
		MassExcessKev: 7288.97061, Stable: true,
	}
	testLithium7 = &domain.Nuclide{
		Label: "7Li", ExcitationLevel: "0", MassNumber: 7, AtomicNumber: 3,
		MassExcessKev: 14907.105, Stable: true,
	}
	testHelium4 = &domain.Nuclide{
		Label: "4He", ExcitationLevel: "0", MassNumber: 4, AtomicNumber: 2,
		MassExcessKev: 2424.91561, Stable: true,
	}
)

func alphaBreakup() *domain.Reaction {
	return domain.NewReaction(
		[]domain.Reactant{
			{Count: 1, Nuclide: testProton},
			{Count: 1, Nuclide: testLithium7},
		},
		[]domain.Reactant{{Count: 2, Nuclide: testHelium4}},
	)
}

// TestSpecChanged tests the SpecChanged message type
func TestSpecChanged(t *testing.T) {
	t.Run("with valid spec", func(t *testing.T) {
		msg := SpecChanged{Spec: "p+7Li"}
		assert.Equal(t, "p+7Li", msg.Spec)
	})

	t.Run("with empty spec", func(t *testing.T) {
		msg := SpecChanged{Spec: ""}
		assert.Equal(t, "", msg.Spec)
	})
}

// TestEnumerationRequested tests the EnumerationRequested message type
func TestEnumerationRequested(t *testing.T) {
	t.Run("with lower bound", func(t *testing.T) {
		bound := 1000.0
		opts := domain.EnumerationOptions{LowerBoundKev: &bound}
		msg := EnumerationRequested{Spec: "H+Li", Options: opts}

		assert.Equal(t, "H+Li", msg.Spec)
		require.NotNil(t, msg.Options.LowerBoundKev)
		assert.Equal(t, 1000.0, *msg.Options.LowerBoundKev)
	})

	t.Run("with daughter count", func(t *testing.T) {
		opts := domain.EnumerationOptions{DaughterCount: 2}
		msg := EnumerationRequested{Spec: "d+d", Options: opts}

		assert.Equal(t, "d+d", msg.Spec)
		assert.Equal(t, 2, msg.Options.DaughterCount)
	})
}

// TestEnumerationCompleted tests the EnumerationCompleted message type
func TestEnumerationCompleted_WithReactions(t *testing.T) {
	reactions := []*domain.Reaction{alphaBreakup()}
	msg := EnumerationCompleted{Spec: "p+7Li", Reactions: reactions, Err: nil}

	assert.Equal(t, "p+7Li", msg.Spec)
	require.Len(t, msg.Reactions, 1)
	assert.Contains(t, msg.Reactions[0].String(), "4He")
	assert.NoError(t, msg.Err)
}

func TestEnumerationCompleted_WithError(t *testing.T) {
	err := errors.New("enumeration failed")
	msg := EnumerationCompleted{Spec: "xx+yy", Reactions: nil, Err: err}

	assert.Nil(t, msg.Reactions)
	assert.Error(t, msg.Err)
	assert.Equal(t, "enumeration failed", msg.Err.Error())
}

func TestEnumerationCompleted_EmptyReactions(t *testing.T) {
	msg := EnumerationCompleted{Spec: "p+7Li", Reactions: []*domain.Reaction{}, Err: nil}

	assert.NotNil(t, msg.Reactions)
	assert.Empty(t, msg.Reactions)
	assert.NoError(t, msg.Err)
}

// TestReactionSelected tests the ReactionSelected message type
func TestReactionSelected(t *testing.T) {
	t.Run("with positive index", func(t *testing.T) {
		msg := ReactionSelected{Index: 5}
		assert.Equal(t, 5, msg.Index)
	})

	t.Run("with zero index", func(t *testing.T) {
		msg := ReactionSelected{Index: 0}
		assert.Equal(t, 0, msg.Index)
	})
}

// TestViewChanged tests the ViewChanged message type
func TestViewChanged(t *testing.T) {
	t.Run("to enumerate view", func(t *testing.T) {
		msg := ViewChanged{View: ViewEnumerate}
		assert.Equal(t, ViewEnumerate, msg.View)
	})

	t.Run("to help view", func(t *testing.T) {
		msg := ViewChanged{View: ViewHelp}
		assert.Equal(t, ViewHelp, msg.View)
	})
}

// TestViewType_String tests all ViewType string representations
func TestViewType_String(t *testing.T) {
	tests := []struct {
		name     string
		view     ViewType
		expected string
	}{
		{"ViewEnumerate", ViewEnumerate, "enumerate"},
		{"ViewHelp", ViewHelp, "help"},
		{"UnknownView", ViewType(99), "unknown"},
		{"NegativeView", ViewType(-1), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	t.Run("with standard error", func(t *testing.T) {
		err := errors.New("something went wrong")
		msg := ErrorOccurred{Err: err}

		assert.Error(t, msg.Err)
		assert.Equal(t, "something went wrong", msg.Err.Error())
	})

	t.Run("with nil error", func(t *testing.T) {
		msg := ErrorOccurred{Err: nil}
		assert.Nil(t, msg.Err)
	})
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}
	// Quit is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}

// TestStudiesLoaded tests the StudiesLoaded message type
func TestStudiesLoaded(t *testing.T) {
	t.Run("with index", func(t *testing.T) {
		index := map[string][]domain.Study{
			"4He": {{Label: "4He", Change: domain.ChangeIncrease, Reference: "L15"}},
		}
		msg := StudiesLoaded{Index: index, Err: nil}

		require.Len(t, msg.Index, 1)
		assert.Equal(t, domain.ChangeIncrease, msg.Index["4He"][0].Change)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		err := errors.New("failed to load studies")
		msg := StudiesLoaded{Index: nil, Err: err}

		assert.Nil(t, msg.Index)
		assert.Error(t, msg.Err)
	})

	t.Run("with empty index", func(t *testing.T) {
		msg := StudiesLoaded{Index: map[string][]domain.Study{}, Err: nil}

		assert.NotNil(t, msg.Index)
		assert.Empty(t, msg.Index)
	})
}

// TestStudiesChanged tests the StudiesChanged message type
func TestStudiesChanged(t *testing.T) {
	msg := StudiesChanged{}
	// StudiesChanged is an empty struct, just verify it can be created
	assert.NotNil(t, msg)
}
