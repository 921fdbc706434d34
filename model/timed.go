package model

// Timed is implemented by every entity that sits at a point in time. Lists of
// timed entities are kept in ascending time order.
type Timed interface {
	TimeCode() int
}

// FindIndexByTime returns the index of the element at exactly time, or -1.
// The search stops at the first element past time.
func FindIndexByTime[T Timed](elems []T, time int) int {
	for i, e := range elems {
		if t := e.TimeCode(); t == time {
			return i
		} else if t > time {
			return -1
		}
	}
	return -1
}

// InsertByTime inserts e before the first element that comes after it.
func InsertByTime[T Timed](elems []T, e T) []T {
	for i, other := range elems {
		if other.TimeCode() > e.TimeCode() {
			elems = append(elems, e)
			copy(elems[i+1:], elems[i:])
			elems[i] = e
			return elems
		}
	}
	return append(elems, e)
}

// InRange returns the elements whose time lies in [start, end).
func InRange[T Timed](elems []T, start, end int) []T {
	var res []T
	for _, e := range elems {
		if t := e.TimeCode(); t >= start && t < end {
			res = append(res, e)
		}
	}
	return res
}
