package singleton_test

import (
	"testing"

	"github.com/sghaida/creational/singleton"
)

func BenchmarkDoubleCheckedInstanceParallel(b *testing.B) {
	first := singleton.DoubleCheckedInstance()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if singleton.DoubleCheckedInstance() != first {
				b.Error("instance changed")
			}
		}
	})
}

func BenchmarkLazyInstanceParallel(b *testing.B) {
	first := singleton.LazyInstance()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if singleton.LazyInstance() != first {
				b.Error("instance changed")
			}
		}
	})
}

func BenchmarkGetInstance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = singleton.GetInstance()
	}
}
