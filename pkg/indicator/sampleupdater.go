package indicator

import "github.com/c9s/streamta/pkg/types"

// SampleUpdater is the observer registry every stream embeds. Callbacks are
// invoked synchronously in registration order.
//
//go:generate callbackgen -type SampleUpdater
type SampleUpdater struct {
	updateCallbacks []func(s types.Sample)

	rejectCallbacks []func(in types.Sample, status types.Status)
}
