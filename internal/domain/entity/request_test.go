package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusAccepted))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusRejected))
	assert.True(t, RequestStatusAccepted.CanTransitionTo(RequestStatusCompleted))

	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusCompleted))
	assert.False(t, RequestStatusAccepted.CanTransitionTo(RequestStatusRejected))
	assert.False(t, RequestStatusRejected.CanTransitionTo(RequestStatusAccepted))
	assert.False(t, RequestStatusCompleted.CanTransitionTo(RequestStatusPending))
}
