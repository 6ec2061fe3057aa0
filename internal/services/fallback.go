package services

import (
	"guzo/internal/demo"
	"guzo/internal/utils"
)

// withFallback runs the upstream call and, on any failure, seeds the demo
// layer and serves the equivalent local answer. The first error is logged
// but never surfaced once the fallback succeeds. Operations outside the
// fallback set simply do not use this wrapper.
func withFallback[T any](requestID, module, op string, store *demo.Store, remoteCall func() (T, error), demoCall func() (T, error)) (T, error) {
	out, err := remoteCall()
	if err == nil {
		return out, nil
	}
	utils.LogFallback(requestID, module, op, err)
	store.EnsureSeeded()
	return demoCall()
}
