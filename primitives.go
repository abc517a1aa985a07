package yaz0

import "golang.org/x/sys/cpu"

// useWideLoad is decided once at init time. On CPUs exposing wide SIMD
// register files, a native 4-byte unaligned load plus word-at-a-time
// compare is materially cheaper than the byte loop it replaces; on older
// parts the byte loop is both simpler and not meaningfully slower. Either
// path must return byte-identical results given the same qlimit (spec
// requirement) — this only changes which arithmetic gets there.
var useWideLoad = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// readU32LE reads 4 bytes starting at p[0] as a little-endian uint32:
// p[0] | p[1]<<8 | p[2]<<16 | p[3]<<24. Callers must ensure len(p) >= 4.
func readU32LE(p []byte) uint32 {
	_ = p[3] // bounds check hoisted once, ahead of all four reads
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// matchLen returns how many leading bytes of a and b agree, comparing at
// most limit bytes (mirroring compare(p, q, qlimit): advance while *p==*q
// and q < qlimit). A 4-byte word comparison is tried first when the
// wide-load path is enabled and at least 4 bytes are available on every
// side; it can only ever return a length the byte-by-byte loop would also
// have returned, since a mismatching word falls through to the same loop.
func matchLen(a, b []byte, limit int) int {
	if limit > len(a) {
		limit = len(a)
	}
	if limit > len(b) {
		limit = len(b)
	}

	n := 0
	if useWideLoad && limit >= 4 && readU32LE(a) == readU32LE(b) {
		n = 4
	}
	for n < limit && a[n] == b[n] {
		n++
	}
	return n
}

// copySmall copies n bytes (0 <= n <= 8) from src to dst. The encoder never
// calls it with overlapping src/dst.
func copySmall(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

// archLoadStrategy reports which comparison strategy matchLen is using on
// this CPU. It is unexported; the package's tests assert on it. The core
// itself never logs.
func archLoadStrategy() string {
	if useWideLoad {
		return "wide-word"
	}
	return "byte-loop"
}
