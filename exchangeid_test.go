// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExchangeID(t *testing.T) {
	exchangeID := NewExchangeID()

	// Should be a valid UUID string
	parsed, err := uuid.Parse(exchangeID)
	require.NoError(t, err)

	// Should be version 7 (time-ordered)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewExchangeIDUniqueness(t *testing.T) {
	const count = 100
	seen := make(map[string]struct{}, count)

	for range count {
		exchangeID := NewExchangeID()
		_, duplicate := seen[exchangeID]
		require.False(t, duplicate, "duplicate exchange ID generated: %s", exchangeID)
		seen[exchangeID] = struct{}{}
	}
}
