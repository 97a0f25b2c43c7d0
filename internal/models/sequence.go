package models

// Sequence hands out monotonically increasing transaction ids.
//
// A Sequence is owned by the customer directory; it is not safe for
// concurrent use on its own and relies on the ledger store's lock.
type Sequence struct {
	next int64
}

// NewSequence returns a sequence whose first id is start.
func NewSequence(start int64) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{next: start}
}

// Next returns the next id.
func (s *Sequence) Next() int64 {
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next will hand out.
func (s *Sequence) Peek() int64 {
	return s.next
}
