// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAddressOutOfRange indicates that an endpoint address ends before
// the parser could find a path after the scheme delimiter.
var ErrAddressOutOfRange = errors.New("address out of range")

// AddressFormatError is the error returned when parsing an endpoint address fails.
//
// Use [errors.As] to obtain the offending address and [errors.Is] with
// [ErrAddressOutOfRange] to check for the specific failure.
type AddressFormatError struct {
	// Address is the endpoint address we were parsing.
	Address string

	// Offset is the byte offset at which parsing failed.
	Offset int

	// Err is the underlying error.
	Err error
}

var _ error = &AddressFormatError{}

// Error implements error.
func (e *AddressFormatError) Error() string {
	return fmt.Sprintf("hoptrace: malformed address %q at offset %d: %s", e.Address, e.Offset, e.Err.Error())
}

// Unwrap returns the underlying error.
func (e *AddressFormatError) Unwrap() error {
	return e.Err
}

// StripSchemeAndOptions removes the scheme, any leading slash and the
// options from an endpoint address, returning a value that is meaningful
// as a destination or operation name.
//
// For example, "direct://foo?timeout=5" becomes "foo".
//
// When the address contains no ':' the whole address is treated as the path.
// When nothing follows the scheme delimiter and the leading slashes, this
// function returns an [*AddressFormatError] wrapping [ErrAddressOutOfRange].
func StripSchemeAndOptions(address string) (string, error) {
	start := strings.IndexByte(address, ':') + 1
	for start < len(address) && address[start] == '/' {
		start++
	}
	if start >= len(address) {
		return "", &AddressFormatError{Address: address, Offset: start, Err: ErrAddressOutOfRange}
	}
	rest := address[start:]
	if end := strings.IndexByte(rest, '?'); end >= 0 {
		return rest[:end], nil
	}
	return rest, nil
}

// ToQueryParameters returns the options of an endpoint address.
//
// The options are the '&' separated key=value pairs following the first '?'.
// Pairs that do not split into exactly a non-empty key and a value are
// silently ignored and the last value wins for duplicate keys. The returned
// map is empty, not nil, when the address has no options.
func ToQueryParameters(address string) map[string]string {
	params := make(map[string]string)
	index := strings.IndexByte(address, '?')
	if index < 0 {
		return params
	}
	for _, token := range strings.Split(address[index+1:], "&") {
		parts := splitDroppingTrailingEmpty(token, "=")
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		params[parts[0]] = parts[1]
	}
	return params
}

// splitDroppingTrailingEmpty is like [strings.Split] but removes the empty
// trailing elements, so that "a=b=" yields ["a", "b"] while "a=" yields ["a"].
func splitDroppingTrailingEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
