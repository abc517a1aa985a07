package yaz0

// EncodeOptions configures Encode/EncodeInto.
type EncodeOptions struct {
	// HashLog sets the hash table size to 2^HashLog entries (2^HashLog * 4
	// bytes of scratch memory). Larger tables reduce hash collisions and
	// can improve the compression ratio at the cost of memory; the search
	// itself always stays single-probe (see hashTable). Zero means
	// "use the default" (14, i.e. 16384 entries / 64 KiB).
	HashLog int
}

const defaultHashLog = 14

// DefaultEncodeOptions returns options using the format's default hash
// table size (HashLog: 14).
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{HashLog: defaultHashLog}
}

func (o *EncodeOptions) hashLog() int {
	if o == nil || o.HashLog <= 0 {
		return defaultHashLog
	}
	return o.HashLog
}
