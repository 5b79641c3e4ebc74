package engine

import "github.com/sheikhrachel/go-life/model"

// Observer receives the grid after every completed generation and after Reset or Refresh.
// It is called with the engine locked and must not call back into the Engine synchronously.
type Observer interface {
	OnTick(snapshot model.Snapshot, generation int)
}

// ObserverFunc adapts a plain function to an Observer
type ObserverFunc func(snapshot model.Snapshot, generation int)

// OnTick calls f
func (f ObserverFunc) OnTick(snapshot model.Snapshot, generation int) {
	f(snapshot, generation)
}
