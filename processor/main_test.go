package main

import (
	"testing"

	"fiber-bizapp/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUndeliverableReason(t *testing.T) {
	assert.Equal(t, "user not found",
		undeliverableReason(&models.User{}, gorm.ErrRecordNotFound))

	assert.Equal(t, "user has no email address",
		undeliverableReason(&models.User{Name: "ghost"}, nil))

	// A reachable user with an address stays in the normal send path.
	assert.Empty(t, undeliverableReason(&models.User{Email: "ops@example.com"}, nil))
}
