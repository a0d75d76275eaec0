package tablemap

import (
	"strconv"
	"testing"
)

const benchSize = 1 << 14

func benchKeys() []string {
	keys := make([]string, benchSize)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func BenchmarkMapGet_Hit(b *testing.B) {
	keys := benchKeys()

	b.Run("variant=stdMap", func(b *testing.B) {
		m := make(map[string]int, benchSize)
		for i, k := range keys {
			m[k] = i
		}

		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			_ = m[keys[i%benchSize]]
		}
	})

	for _, variant := range hashVariants {
		b.Run("variant="+variant.name, func(b *testing.B) {
			m := variant.build(benchSize * 2)
			for i, k := range keys {
				m.Set(k, i)
			}

			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				_, _ = m.Get(keys[i%benchSize])
			}
		})
	}
}

func BenchmarkMapGet_Miss(b *testing.B) {
	keys := benchKeys()

	for _, variant := range hashVariants {
		b.Run("variant="+variant.name, func(b *testing.B) {
			m := variant.build(benchSize * 2)
			for i, k := range keys {
				m.Set(k, i)
			}

			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				_, _ = m.Get("missing-" + keys[i%benchSize])
			}
		})
	}
}

func BenchmarkMapSet(b *testing.B) {
	keys := benchKeys()

	for _, variant := range hashVariants {
		b.Run("variant="+variant.name, func(b *testing.B) {
			m := variant.build(benchSize * 2)

			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				m.Set(keys[i%benchSize], i)
			}
		})
	}
}
