package facades

import "errors"

// ErrUpstreamUnavailable covers transport failures, non-2xx statuses and
// undecodable bodies from an upstream API.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
