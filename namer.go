// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

import "strings"

// DefaultOperationName is the operation name used when none can be
// derived from the endpoint address.
const DefaultOperationName = "CamelOperation"

// OperationName derives a low-cardinality operation name from an endpoint address.
//
// The name is the scheme, i.e., the text before the first ':'. Spans are thus
// grouped by transport rather than by full path. When the address has no ':'
// or the scheme is empty, this function returns fallback.
func OperationName(address, fallback string) string {
	scheme, _, found := strings.Cut(address, ":")
	if !found || scheme == "" {
		return fallback
	}
	return scheme
}
