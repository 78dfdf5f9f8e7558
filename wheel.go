package main

import (
	"math"
	"time"
)

const (
	binaryDetectCnt = 4
	initialMaxDelta = 10
	maxWheelPeriod  = 100 * time.Millisecond
)

type wheelType int

const (
	wheelTypeNone wheelType = iota
	wheelTypeBinary
	wheelTypeContinuous
)

// wheelNormalizer converts browser dependent wheel deltas into zoom steps.
// Wheels reporting a fixed step are mapped to ±1, continuous ones
// (touchpads) are scaled by the recent peak speed.
type wheelNormalizer struct {
	now func() time.Time

	eventCnt  int
	wheelType wheelType
	maxDelta  float64

	binaryCnt int
	binaryAbs float64

	timePrev time.Time
	dSum     float64
}

// Normalize returns the normalized delta. The second return value is false
// until enough events are received to detect the wheel type.
func (n *wheelNormalizer) Normalize(d float64) (float64, bool) {
	ready := n.eventCnt > binaryDetectCnt
	if !ready {
		n.eventCnt++
	}

	dAbs := math.Abs(d)
	if dAbs == 0 {
		return 0, ready
	}

	if n.binaryAbs == dAbs {
		n.binaryCnt++
	} else {
		n.binaryCnt = 0
	}
	n.binaryAbs = dAbs

	typePrev := n.wheelType
	if n.binaryCnt > binaryDetectCnt {
		n.wheelType = wheelTypeBinary
	} else {
		n.wheelType = wheelTypeContinuous
	}
	if n.wheelType != typePrev {
		n.maxDelta = initialMaxDelta
	}

	n.dSum += d
	now := n.clock()
	if dt := now.Sub(n.timePrev); dt > 0 {
		if dt > maxWheelPeriod {
			dt = maxWheelPeriod
		}
		dps := math.Abs(n.dSum / dt.Seconds())
		n.dSum = 0
		n.timePrev = now

		if n.maxDelta < dps {
			// LPF to suppress spikes
			n.maxDelta = n.maxDelta*0.5 + dps*0.5
		}
		n.maxDelta *= 0.95
	}
	n.maxDelta = math.Max(n.maxDelta, 1)

	if n.wheelType == wheelTypeBinary {
		if d < 0 {
			return -1, ready
		}
		return 1, ready
	}
	return d * 250 / n.maxDelta, ready
}

func (n *wheelNormalizer) clock() time.Time {
	if n.now == nil {
		return time.Now()
	}
	return n.now()
}
