// Package hz tracks input-event timing and derives polling frequencies.
package hz

// WindowSize is the number of samples retained per device class.
const WindowSize = 64

// DeviceClass identifies a category of input device whose events are
// tracked as a single stream.
type DeviceClass int

// Recognized device classes. All keyboards report as one class, as do
// all mice.
const (
	Keyboard DeviceClass = iota
	Mouse

	numDeviceClasses int = iota
)

// String returns the report label for the class.
func (c DeviceClass) String() string {
	switch c {
	case Keyboard:
		return "Keyboard"
	case Mouse:
		return "Mouse"
	}
	return "Unknown"
}

// Tracker holds the most recent event timestamps of one device class and
// the instantaneous frequency derived from each consecutive pair. Both
// sequences live in a fixed-capacity ring; the oldest entry is evicted
// first once WindowSize is reached.
//
// A Tracker is not safe for concurrent use. The monitor loop is the single
// writer and reads summaries between event batches, so no locking is
// needed there.
type Tracker struct {
	timestamps [WindowSize]uint64
	freqs      [WindowSize]float64
	head       int
	size       int
}

// Record ingests one event timestamp in milliseconds and returns the
// frequency sample it produced.
//
// Events whose timestamp equals the last recorded one are discarded: they
// are duplicates or otherwise non-measurable. Timestamps earlier than the
// last recorded one are discarded the same way rather than producing a
// wrapped-around delta. Both cases return ok=false without mutating the
// window.
//
// The first sample of a fresh window has no interval to measure and
// records frequency 0.
func (t *Tracker) Record(timestamp uint64) (freq float64, ok bool) {
	if t.size > 0 {
		last := t.last()
		if timestamp <= last {
			return 0, false
		}
		freq = 1000.0 / float64(timestamp-last)
	}
	t.push(timestamp, freq)
	return freq, true
}

// Len returns the number of samples currently in the window.
func (t *Tracker) Len() int {
	return t.size
}

// Timestamps returns a copy of the retained timestamps, oldest first.
func (t *Tracker) Timestamps() []uint64 {
	out := make([]uint64, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.timestamps[(t.head+i)%WindowSize]
	}
	return out
}

// Frequencies returns a copy of the retained frequency samples, oldest
// first, parallel to Timestamps.
func (t *Tracker) Frequencies() []float64 {
	out := make([]float64, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.freqs[(t.head+i)%WindowSize]
	}
	return out
}

// Latest returns the most recent frequency sample, or 0 if the window is
// empty.
func (t *Tracker) Latest() float64 {
	if t.size == 0 {
		return 0
	}
	return t.freqs[(t.head+t.size-1)%WindowSize]
}

func (t *Tracker) last() uint64 {
	return t.timestamps[(t.head+t.size-1)%WindowSize]
}

func (t *Tracker) push(timestamp uint64, freq float64) {
	idx := (t.head + t.size) % WindowSize
	t.timestamps[idx] = timestamp
	t.freqs[idx] = freq
	if t.size < WindowSize {
		t.size++
		return
	}
	t.head = (t.head + 1) % WindowSize
}
