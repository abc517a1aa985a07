package yaz0

// hashTable is the single-probe match-finding index: a fixed-size table of
// absolute input offsets keyed by a 3-byte fingerprint hash. Every lookup
// immediately overwrites the consulted slot — there is no chaining and no
// secondary probe, which caps match-finding at O(1) per scanned byte.
type hashTable struct {
	entries []uint32
	mask    uint32
	shift   uint
}

func newHashTable(hashLog int) *hashTable {
	size := 1 << uint(hashLog)
	return &hashTable{
		entries: make([]uint32, size),
		mask:    uint32(size - 1),
		shift:   32 - uint(hashLog),
	}
}

// hash derives a table index from the low 24 bits of a 4-byte unaligned
// load (the 3-byte match fingerprint); the multiplicative constant is
// FastLZ/FastYZ's 2654435769 (2^32 / golden ratio).
func (h *hashTable) hash(v uint32) uint32 {
	return ((v * 2654435769) >> h.shift) & h.mask
}

// lookup returns the candidate offset currently stored for fingerprint
// index idx, then immediately overwrites it with cur (the current cursor's
// absolute offset into input).
func (h *hashTable) lookup(idx uint32, cur uint32) (candidate uint32) {
	candidate = h.entries[idx]
	h.entries[idx] = cur
	return candidate
}

// set overwrites the table slot for idx with the absolute offset pos,
// without reading the previous occupant. Used for the post-match
// two-position index refresh, where the old candidate is of no interest.
func (h *hashTable) set(idx uint32, pos uint32) {
	h.entries[idx] = pos
}
