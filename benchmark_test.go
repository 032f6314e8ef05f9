package zlutf

import (
	"testing"
	"unicode/utf8"
)

var benchmarkUTF8Payload = []byte("The quick brown fox jumps over the lazy dog. \xe4\xb8\xad\xe6\x96\x87\xf0\x9f\x98\x80")

func BenchmarkDecodeUTF8(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		es := NewEncodeState()
		remaining := benchmarkUTF8Payload
		for len(remaining) > 0 {
			_, n := decodeUTF8(es, remaining)
			remaining = remaining[n:]
		}
	}
}

// Baseline comparison using only unicode/utf8 directly, to see the overhead
// of carry-state tracking and the CPV wrapping over raw rune decoding.
func BenchmarkStandardUTF8DecodeRune(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		remaining := benchmarkUTF8Payload
		for len(remaining) > 0 {
			_, n := utf8.DecodeRune(remaining)
			remaining = remaining[n:]
		}
	}
}

func BenchmarkEncodeUTF8Fast(b *testing.B) {
	es := NewEncodeState()
	dst := make([]byte, CarryMax)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var pr PutResult
		encodeUTF8Fast(es, dst, MakeCPV(0x4E2D, false), &pr)
	}
}

// Baseline comparison using only unicode/utf8 directly, to see the overhead
// of the EncodeState/PutResult plumbing over raw rune encoding.
func BenchmarkStandardUTF8EncodeRune(b *testing.B) {
	dst := make([]byte, utf8.UTFMax)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		utf8.EncodeRune(dst, 0x4E2D)
	}
}

func BenchmarkTranscodeUTF8ToUTF16LE(b *testing.B) {
	var sink Sink = func(p []byte) error { return nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tc, _ := NewTranscoder(UTF8, UTF16LE, false)
		_, _ = tc.Feed(benchmarkUTF8Payload, sink, 0)
		_ = tc.Flush(sink, 0)
	}
}
