// SPDX-License-Identifier: MIT

package gate

// Observer receives pipeline events. Pipelines call observers synchronously
// from the submitting goroutine; implementations used with SubmitBatch must be
// safe for concurrent use.
type Observer interface {
	// OnTier is called when the pipeline enters tier t, before it runs.
	OnTier(t Tier)
	// OnResult is called once per transition with the final result.
	OnResult(r Result)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Tier   func(t Tier)
	Result func(r Result)
}

// OnTier implements Observer.
func (f ObserverFuncs) OnTier(t Tier) {
	if f.Tier != nil {
		f.Tier(t)
	}
}

// OnResult implements Observer.
func (f ObserverFuncs) OnResult(r Result) {
	if f.Result != nil {
		f.Result(r)
	}
}
