package service

import (
	"testing"

	"github.com/pavlenko-transit/pickboard/modules/periods/model"
	"github.com/stretchr/testify/assert"
)

func TestCheckTransition(t *testing.T) {
	t.Run("upcoming to open via open action", func(t *testing.T) {
		to, err := CheckTransition(model.StatusUpcoming, ActionOpen)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusOpen, to)
	})

	t.Run("open to closed via close action", func(t *testing.T) {
		to, err := CheckTransition(model.StatusOpen, ActionClose)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusClosed, to)
	})

	t.Run("closed to processing via process action", func(t *testing.T) {
		to, err := CheckTransition(model.StatusClosed, ActionProcess)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusProcessing, to)
	})

	t.Run("processing to completed via complete action", func(t *testing.T) {
		to, err := CheckTransition(model.StatusProcessing, ActionComplete)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, to)
	})

	t.Run("processing to closed via abort action", func(t *testing.T) {
		to, err := CheckTransition(model.StatusProcessing, ActionAbort)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusClosed, to)
	})

	t.Run("rejects open action from closed", func(t *testing.T) {
		_, err := CheckTransition(model.StatusClosed, ActionOpen)
		assert.Equal(t, model.ErrInvalidTransition, err)
	})

	t.Run("rejects submit when not open", func(t *testing.T) {
		_, err := CheckTransition(model.StatusUpcoming, ActionSubmit)
		assert.Equal(t, model.ErrInvalidTransition, err)
	})

	t.Run("rejects edit once completed", func(t *testing.T) {
		_, err := CheckTransition(model.StatusCompleted, ActionEdit)
		assert.Equal(t, model.ErrInvalidTransition, err)
	})

	t.Run("allows notifyAssign while completed", func(t *testing.T) {
		to, err := CheckTransition(model.StatusCompleted, ActionNotifyAssign)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, to)
	})

	t.Run("allows notify while upcoming", func(t *testing.T) {
		to, err := CheckTransition(model.StatusUpcoming, ActionNotify)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusUpcoming, to)
	})
}
