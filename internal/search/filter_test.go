package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSetStartsAllActive(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset", "space"})
	assert.Equal(t, []string{"model", "dataset", "space"}, f.Active())
	assert.Equal(t, 3, f.ActiveCount())
}

func TestFilterSetChipCycle(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset", "space"})

	// Active chip among many: exclusive select.
	f.Toggle("model")
	assert.Equal(t, []string{"model"}, f.Active())

	// Sole active chip toggled again: reset to all.
	f.Toggle("model")
	assert.Equal(t, []string{"model", "dataset", "space"}, f.Active())

	// Inactive chip while {model} is active: additive.
	f.Toggle("model")
	f.Toggle("space")
	assert.Equal(t, []string{"model", "space"}, f.Active())

	// Active chip while others are active: exclusive select.
	f.Toggle("space")
	assert.Equal(t, []string{"space"}, f.Active())
}

func TestFilterSetNeverEmpty(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset"})
	f.Toggle("model") // {model}
	f.Toggle("model") // reset
	assert.NotZero(t, f.ActiveCount())
	assert.Equal(t, 2, f.ActiveCount())
}

func TestFilterSetIgnoresUnconfiguredType(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset"})
	f.Toggle("space")
	assert.Equal(t, []string{"model", "dataset"}, f.Active())
}

func TestFilterSetActiveKeepsConfigurationOrder(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset", "space"})
	f.Toggle("space") // exclusive
	f.Toggle("model") // additive
	assert.Equal(t, []string{"model", "space"}, f.Active())
}

func TestFilterSetIsActive(t *testing.T) {
	f := NewFilterSet([]string{"model", "dataset"})
	f.Toggle("model")
	assert.True(t, f.IsActive("model"))
	assert.False(t, f.IsActive("dataset"))
}
