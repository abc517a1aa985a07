package yaz0

// Encode compresses src into a new Yaz0 stream (header included). opts may
// be nil (uses DefaultEncodeOptions). Input must be at least 16 bytes; the
// encoder's scan bounds leave no room for anything shorter.
func Encode(src []byte, opts *EncodeOptions) ([]byte, error) {
	if len(src) < 16 {
		return nil, ErrInputTooShort
	}

	out := make([]byte, 0, Bound(len(src)))
	n, err := encodeAppend(out, src, opts)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// EncodeInto compresses src into dst, which must have capacity at least
// Bound(len(src)); dst's existing length is ignored and overwritten. It
// returns the slice of dst actually written.
func EncodeInto(dst, src []byte, opts *EncodeOptions) ([]byte, error) {
	if len(src) < 16 {
		return nil, ErrInputTooShort
	}
	if cap(dst) < Bound(len(src)) {
		return nil, ErrOutputTooSmall
	}
	return encodeAppend(dst[:0], src, opts)
}

// encodeAppend runs the LZ77 scan and returns dst with the complete Yaz0
// stream appended.
func encodeAppend(dst, src []byte, opts *EncodeOptions) ([]byte, error) {
	length := len(src)

	header := make([]byte, HeaderSize)
	writeHeader(header, length)
	dst = append(dst, header...)

	w := &writer{out: dst}
	w.newGroup()

	table := newHashTable(opts.hashLog())

	ipBound := length - 4
	ipLimit := length - 13

	anchor := 0
	ip := MinMatchLength - 1 // first 2 bytes can't be referenced: no earlier data

scan:
	for ip < ipLimit {
		var seq, cmp uint32
		var ref int

		for {
			seq = readU32LE(src[ip:]) & 0x00FFFFFF
			h := table.hash(seq)
			ref = int(table.lookup(h, uint32(ip)))

			distance := ip - ref
			if distance < MaxMatchDistance {
				cmp = readU32LE(src[ref:]) & 0x00FFFFFF
			} else {
				cmp = 0x01000000
			}

			if ip >= ipLimit {
				break scan
			}
			ip++

			if seq == cmp {
				break
			}
		}

		ip--

		if anchor < ip {
			w.emitLiterals(ip-anchor, src[anchor:ip])
		}

		distance := ip - ref
		length := matchLen(src[ref+MinMatchLength:], src[ip+MinMatchLength:], ipBound-(ip+MinMatchLength)) + MinMatchLength
		w.emitMatch(length, distance)

		ip += length
		anchor = ip

		// Refresh the index at the match boundary: insert the two
		// positions right after the match so future probes can find
		// repeats starting there, without re-hashing every byte of the
		// matched region.
		seq = readU32LE(src[ip:])
		table.set(table.hash(seq&0xFFFFFF), uint32(ip))
		ip++
		seq >>= 8
		table.set(table.hash(seq), uint32(ip))
		ip++
	}

	remaining := length - anchor
	w.emitLiterals(remaining, src[anchor:length])

	return w.out, nil
}
