package utf8

import (
	"strings"
	"testing"
	stdutf8 "unicode/utf8"

	"github.com/ajroetker/go-simdutf/vec"
)

var benchInputs = map[string][]byte{
	"ascii":     []byte(strings.Repeat("All work and no play makes Jack a dull boy. ", 93)),
	"mixed":     []byte(strings.Repeat("Zürich こんにちは naïve 𐌰𐌱 test ", 100)),
	"cjk":       []byte(strings.Repeat("日本語のベンチマークテキストです", 100)),
	"four-byte": []byte(strings.Repeat("\xf0\x90\x8c\xbc", 1000)),
}

func BenchmarkValid(b *testing.B) {
	widths := map[string]vec.Width{
		"w16": vec.Width16,
		"w32": vec.Width32,
		"w64": vec.Width64,
	}
	for wname, w := range widths {
		v := New(WithWidth(w))
		for iname, input := range benchInputs {
			b.Run(wname+"/"+iname, func(b *testing.B) {
				b.SetBytes(int64(len(input)))
				for i := 0; i < b.N; i++ {
					if !v.Valid(input) {
						b.Fatal("benchmark input rejected")
					}
				}
			})
		}
	}
}

func BenchmarkValid_ScalarTier(b *testing.B) {
	v := New(WithWidth(vec.Width16), WithShuffler(vec.ScalarShuffler()))
	input := benchInputs["mixed"]
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		if !v.Valid(input) {
			b.Fatal("benchmark input rejected")
		}
	}
}

func BenchmarkValid_Stdlib(b *testing.B) {
	for iname, input := range benchInputs {
		b.Run(iname, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				if !stdutf8.Valid(input) {
					b.Fatal("benchmark input rejected")
				}
			}
		})
	}
}
