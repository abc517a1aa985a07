package yaz0

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrInputTooShort is returned when Encode is called with fewer than 16
	// bytes of input; the encoder's scan bounds need at least 16 bytes.
	ErrInputTooShort = errors.New("yaz0: input shorter than 16 bytes")
	// ErrOutputTooSmall is returned when EncodeInto's destination buffer is
	// smaller than Bound(len(src)).
	ErrOutputTooSmall = errors.New("yaz0: output buffer smaller than Bound(len(src))")

	// ErrBadMagic is returned when the input does not start with "Yaz0".
	ErrBadMagic = errors.New("yaz0: bad magic")
	// ErrZeroSize is returned when the header's decompressed size is zero.
	ErrZeroSize = errors.New("yaz0: header declares zero decompressed size")
	// ErrOutputCapacity is returned when the header's decompressed size
	// exceeds the caller-supplied output capacity.
	ErrOutputCapacity = errors.New("yaz0: decompressed size exceeds output capacity")
	// ErrTruncated is returned when the compressed stream is shorter than
	// the 16-byte header, or ends before a flag byte, literal byte or match
	// code it has already committed to is complete.
	ErrTruncated = errors.New("yaz0: truncated input")
	// ErrBackReferenceRange is returned when a match's distance reaches
	// before the start of output, or its length would overrun the
	// declared decompressed size.
	ErrBackReferenceRange = errors.New("yaz0: back-reference out of range")

	// ErrDecodeInternal guards an invariant the decoder's own bounds
	// checks should have already prevented. Callers can use
	// errors.Is(err, yaz0.ErrDecodeInternal).
	ErrDecodeInternal = errors.New("yaz0: internal decoder invariant violated")
)
