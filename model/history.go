package model

const defaultHistorySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history remembering up to size generations
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a generation to the history and reports whether it repeats one already
// remembered, i.e. the grid is static or cycling with a period no longer than the history.
func (h *History) Record(s Snapshot) bool {
	hash := s.Hash()

	repeated := false
	for _, prev := range h.hashes {
		if prev == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of remembered generations
func (h *History) Len() int {
	return len(h.hashes)
}
