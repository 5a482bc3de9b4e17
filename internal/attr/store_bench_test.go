package attr

import "testing"

func BenchmarkStore_ApplyStacked(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		s := NewStore(map[Key]float64{DamageMultiplier: 2.5})
		for range 6 {
			s.ApplyModifier(DamageMultiplier, NewStacked(1.1, "damage"))
		}
		_ = s.Get(DamageMultiplier)
	}
}

func BenchmarkStore_Get(b *testing.B) {
	s := NewStore(map[Key]float64{testHP: 1000})
	s.ApplyModifier(testHP, NewMultiply(1.25))
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = s.Get(testHP)
	}
}
