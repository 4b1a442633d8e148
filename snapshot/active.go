package snapshot

import "github.com/lego290/spine2d/engine"

// ActiveSet is the identity set of update refs found in the skeleton's
// update-evaluation order. Membership is the frame-accurate answer to "was
// this constraint evaluated": the engine's enabled accessor can disagree
// after skin changes or cache rebuilds.
type ActiveSet map[engine.UpdateRef]bool

// CaptureActiveSet snapshots the current update-evaluation order. It must be
// retaken after any mutation that rebuilds the cache.
func CaptureActiveSet(skel engine.Skeleton) ActiveSet {
	order := skel.UpdateOrder()
	set := make(ActiveSet, len(order))
	for _, ref := range order {
		set[ref] = true
	}
	return set
}

// Active reports whether the ref was part of the captured evaluation order.
func (s ActiveSet) Active(ref engine.UpdateRef) bool { return s[ref] }
