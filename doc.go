/*
Package yaz0 implements the Yaz0 (a.k.a. SZS) container format: a byte-exact
LZ77-family compressor and decompressor compatible with third-party Yaz0
decoders used across the Nintendo modding toolchain.

The format interleaves literal bytes and 2-/3-byte match codes behind a
flag-byte bitmap: each flag byte governs the next 8 tokens, one bit per
token (1 = literal, 0 = match reference). A 16-byte header carries the
magic "Yaz0" and the big-endian decompressed size.

# Encode

	out, err := yaz0.Encode(data, nil)
	out, err := yaz0.Encode(data, &yaz0.EncodeOptions{HashLog: 15})

Input must be at least 16 bytes; see [Bound] for sizing an output buffer
when encoding in place with [EncodeInto].

# Decode

	out, err := yaz0.Decode(compressed, decompressedSize)

[DecompressedSize] and [IsValid] let a caller size a buffer or sniff the
format without decoding.
*/
package yaz0
