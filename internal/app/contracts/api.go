package contracts

import "context"

// APIClient performs one authenticated round trip to the MedTrack API.
// body may be nil; out may be nil when the response is ignored.
type APIClient interface {
	Do(ctx context.Context, method, path string, body, out interface{}) error
}
