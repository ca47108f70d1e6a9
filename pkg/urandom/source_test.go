package urandom

import (
	"testing"
)

func TestCompose64(t *testing.T) {
	// 先に取り出した値が上位32ビットになることを確認
	src := &cycleSource{vals: []uint32{0x11111111, 0x22222222}}

	if got := Compose64(src); got != 0x1111111122222222 {
		t.Errorf("got=0x%016X, want=0x1111111122222222", got)
	}
	if src.n != 2 {
		t.Errorf("消費されたサンプル数が不正: %d", src.n)
	}
}

func TestDefaultSeeds(t *testing.T) {
	// 4語のシード列が得られ、生成器の構築に使えることを確認
	seeds := DefaultSeeds()
	if len(seeds) != 4 {
		t.Fatalf("シード列の長さが不正: %d", len(seeds))
	}

	rng := NewMersenneKey(seeds)
	for i := 0; i < 100; i++ {
		_ = rng.Uint32()
	}
}
