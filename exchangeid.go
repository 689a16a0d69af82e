// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewExchangeID returns a UUIDv7 identifying an exchange in the logs.
//
// All log entries emitted by a [*HopFunc] for the same call share
// the same exchangeID.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewExchangeID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
