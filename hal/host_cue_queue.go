//go:build !tinygo

package hal

import "sync"

// cueQueue holds cue samples between the controller, which writes a whole
// cue in one burst, and the audio player, which pulls 16-bit little-endian
// stereo frames. Writes never block the controller: samples beyond limit are
// dropped. Reads never block the player: an empty queue reads as silence.
type cueQueue struct {
	mu      sync.Mutex
	samples []int16
	head    int
	limit   int
	dropped int
}

func newCueQueue(limit int) *cueQueue {
	return &cueQueue{limit: limit}
}

// push queues one sample and reports whether it fit.
func (q *cueQueue) push(s int16) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.samples)-q.head >= q.limit {
		q.dropped++
		return false
	}
	if q.head > 0 && len(q.samples) == cap(q.samples) {
		n := copy(q.samples, q.samples[q.head:])
		q.samples = q.samples[:n]
		q.head = 0
	}
	q.samples = append(q.samples, s)
	return true
}

// pending returns how many samples are waiting to be played.
func (q *cueQueue) pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.samples) - q.head
}

func (q *cueQueue) reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.samples = q.samples[:0]
	q.head = 0
}

// Read fills p with whole stereo frames, padding with silence once the queue
// runs dry.
func (q *cueQueue) Read(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		var s int16
		if q.head < len(q.samples) {
			s = q.samples[q.head]
			q.head++
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	if q.head == len(q.samples) {
		q.samples = q.samples[:0]
		q.head = 0
	}
	return n, nil
}
