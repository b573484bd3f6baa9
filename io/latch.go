package io

// Latch holds the last byte sent to it, like a bank of LEDs.
type Latch struct {
	Value byte // Last value sent.
	Count int  // Number of sends since the last rewind.
}

var _ Port = (*Latch)(nil)

// Rewind clears the latch.
func (lc *Latch) Rewind() {
	lc.Value = 0
	lc.Count = 0
}

// Send latches a value.
func (lc *Latch) Send(value byte) (err error) {
	lc.Value = value
	lc.Count++
	return
}
