// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

// Endpoint is an addressable source or destination in a routing pipeline.
type Endpoint interface {
	// EndpointURI returns the raw, scheme-prefixed endpoint address.
	EndpointURI() string
}

// EndpointURI is an [Endpoint] consisting of just its address.
type EndpointURI string

var _ Endpoint = EndpointURI("")

// EndpointURI implements [Endpoint].
func (e EndpointURI) EndpointURI() string {
	return string(e)
}
