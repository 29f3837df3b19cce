package imei_test

import (
	"testing"

	"github.com/dmitrymomot/imei"
)

func BenchmarkValid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if !imei.Valid("490154203237518") {
			b.Fatal("expected valid")
		}
	}
}

func BenchmarkValid_EarlyReject(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if imei.Valid("A90154203237518") {
			b.Fatal("expected invalid")
		}
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := imei.New("354406185514933"); err != nil {
			b.Fatal(err)
		}
	}
}
