package hz

// Registry maps each device class to its Tracker. The class set is closed
// and small, so a fixed-size array indexed by class replaces a map;
// trackers are created lazily on the first event for a class and live for
// the monitoring session.
type Registry struct {
	trackers [numDeviceClasses]*Tracker
}

// Record forwards one classified event to the class's tracker, creating
// it if this is the first event for the class. Events for classes outside
// the known set are ignored. Returns the frequency sample produced and
// whether the event was recorded.
func (r *Registry) Record(class DeviceClass, timestamp uint64) (float64, bool) {
	if class < 0 || int(class) >= numDeviceClasses {
		return 0, false
	}
	t := r.trackers[class]
	if t == nil {
		t = &Tracker{}
		r.trackers[class] = t
	}
	return t.Record(timestamp)
}

// Tracker returns the tracker for a class, or nil if the class has not
// produced any events yet.
func (r *Registry) Tracker(class DeviceClass) *Tracker {
	if class < 0 || int(class) >= numDeviceClasses {
		return nil
	}
	return r.trackers[class]
}

// Classes returns the classes with at least one recorded sample, in
// ascending class order. This is the stable ordering reports use.
func (r *Registry) Classes() []DeviceClass {
	var out []DeviceClass
	for i, t := range r.trackers {
		if t != nil && t.Len() > 0 {
			out = append(out, DeviceClass(i))
		}
	}
	return out
}
