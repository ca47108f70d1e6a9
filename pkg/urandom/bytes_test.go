package urandom

import (
	"errors"
	"testing"
)

func TestFillBytes(t *testing.T) {
	// 各バイトが対応する32ビットサンプルの下位8ビットであることを確認
	rng1 := NewMersenneSeed(2020)
	rng2 := NewMersenneSeed(2020)

	buf := make([]byte, 256)
	FillBytes(rng1, buf)

	for i, b := range buf {
		if want := byte(rng2.Uint32()); b != want {
			t.Fatalf("buf[%d]=0x%02X, want=0x%02X", i, b, want)
		}
	}
}

func TestFillNonZeroBytes(t *testing.T) {
	// ゼロバイトが出現しないことを確認
	rng := NewMersenneSeed(2021)

	buf := make([]byte, 4096)
	FillNonZeroBytes(rng, buf)

	for i, b := range buf {
		if b == 0 {
			t.Fatalf("buf[%d] がゼロバイト", i)
		}
	}
}

func TestFillNonZeroBytes_FullRange(t *testing.T) {
	// [1, 256) の全値に到達し得ることを境界サンプルで確認
	buf := make([]byte, 1)

	FillNonZeroBytes(&cycleSource{vals: []uint32{0}}, buf)
	if buf[0] != 1 {
		t.Errorf("下端: got=%d, want=1", buf[0])
	}

	FillNonZeroBytes(&cycleSource{vals: []uint32{0xFFFFFFFF}}, buf)
	if buf[0] != 255 {
		t.Errorf("上端: got=%d, want=255", buf[0])
	}
}

func TestFillBytes_EmptyAndNil(t *testing.T) {
	src := &cycleSource{vals: []uint32{1}}

	// 長さ0の (nil でない) バッファは何もしない
	FillBytes(src, []byte{})
	FillNonZeroBytes(src, []byte{})
	if src.n != 0 {
		t.Errorf("長さ0のバッファで乱数が消費された: draws=%d", src.n)
	}

	// nil バッファは ErrNilBuffer で panic する
	for _, fn := range []func(){
		func() { FillBytes(src, nil) },
		func() { FillNonZeroBytes(src, nil) },
	} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrNilBuffer) {
					t.Errorf("予期しない panic 値: %v", r)
				}
			}()
			fn()
		}()
	}
}
