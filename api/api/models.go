/* models.go
 * This file contain the interfaces and errors that are used by api consumers
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"errors"

	"fpl-insights/api/external"
)

// ErrPlayerNotFound is returned when a player id is not in the bootstrap data
var ErrPlayerNotFound = errors.New("player not found")

// Source is the upstream data the API is computed from. *external.Client satisfies it
type Source interface {
	FetchBootstrapStatic(ctx context.Context) (external.BootstrapStatic, error)
	FetchFixtures(ctx context.Context) ([]external.Fixture, error)
	FetchEventFixtures(ctx context.Context, event int) ([]external.Fixture, error)
}

var _ Source = (*external.Client)(nil)
