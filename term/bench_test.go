package term_test

import (
	"testing"

	"github.com/katalvlaran/atomlevels/term"
)

// BenchmarkShellTerms_F7_Fresh measures a cold cache on the half-filled f shell.
func BenchmarkShellTerms_F7_Fresh(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := term.NewEngine().ShellTerms(3, 7); err != nil {
			b.Fatalf("ShellTerms failed: %v", err)
		}
	}
}

// BenchmarkShellTerms_F7_Warm reuses one Engine so every A is memoized.
func BenchmarkShellTerms_F7_Warm(b *testing.B) {
	e := term.NewEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.ShellTerms(3, 7); err != nil {
			b.Fatalf("ShellTerms failed: %v", err)
		}
	}
}

// BenchmarkShellTerms_G9_LRU exercises eviction with a small bounded cache.
func BenchmarkShellTerms_G9_LRU(b *testing.B) {
	e := term.NewEngine(term.WithCacheSize(256))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.ShellTerms(4, 9); err != nil {
			b.Fatalf("ShellTerms failed: %v", err)
		}
	}
}
