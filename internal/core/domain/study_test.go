package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestChange_IsValid tests the known change directions
func TestChange_IsValid(t *testing.T) {
	assert.True(t, ChangeIncrease.IsValid())
	assert.True(t, ChangeDecrease.IsValid())
	assert.False(t, Change("unchanged").IsValid())
	assert.False(t, Change("").IsValid())
}

// TestChange_Mark tests the agreement symbols
func TestChange_Mark(t *testing.T) {
	assert.Equal(t, "✓", ChangeIncrease.Mark())
	assert.Equal(t, "✗", ChangeDecrease.Mark())
	assert.Equal(t, "?", Change("unknown").Mark())
}

// TestStudy_Fields tests the study structure
func TestStudy_Fields(t *testing.T) {
	study := Study{
		ID:          "study-1",
		Label:       "6Li",
		Change:      ChangeIncrease,
		Reference:   "L15",
		Description: "2015 Lugano E-Cat test by Levi et al.",
	}

	assert.Equal(t, "6Li", study.Label)
	assert.Equal(t, ChangeIncrease, study.Change)
	assert.Equal(t, "L15", study.Reference)
	assert.Equal(t, "✓", study.Change.Mark())
}
