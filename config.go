// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import "time"

// Config holds common configuration for hoptrace decorators and hops.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// DefaultOperationName is the operation name used when none
	// can be derived from the endpoint address.
	//
	// Set by [NewConfig] to [DefaultOperationName].
	DefaultOperationName string

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// FaultRecorder records faults of failed exchanges onto spans.
	//
	// Set by [NewConfig] to [DefaultFaultRecorder].
	FaultRecorder FaultRecorder

	// Sanitizer redacts secrets from endpoint addresses.
	//
	// Set by [NewConfig] to [DefaultURISanitizer].
	Sanitizer URISanitizer

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		DefaultOperationName: DefaultOperationName,
		ErrClassifier:        DefaultErrClassifier,
		FaultRecorder:        DefaultFaultRecorder,
		Sanitizer:            DefaultURISanitizer,
		TimeNow:              time.Now,
	}
}
