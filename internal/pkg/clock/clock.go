package clock

import "time"

// Clock supplies the current time so date stamping can be tested.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	now time.Time
}

func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Today returns the clock's calendar date as midnight UTC. DATE columns are
// bound through the driver's location (UTC by default), so a zoned midnight
// east of UTC would be stored as the previous day.
func Today(c Clock) time.Time {
	y, m, d := c.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
