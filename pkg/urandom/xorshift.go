package urandom

import (
	"math/rand"
)

// XorShift は xorshift1024* 疑似乱数生成器です。
// 16語×64ビットの内部状態を持ち、ネイティブに64ビット値を生成します。
// 32ビット値は64ビット出力の上位半分から取り出します。
type XorShift struct {
	s [16]uint64
	p int
}

var (
	_ Source        = (*XorShift)(nil)
	_ rand.Source64 = (*XorShift)(nil)
)

// NewXorShift は指定されたシードで XorShift を初期化して返します。
func NewXorShift(seed uint64) *XorShift {
	x := &XorShift{}
	x.init(seed)
	return x
}

// init はシードを splitmix 方式で16語の内部状態へ展開します。
// mix64 は全単射のため、16語すべてが 0 になることはありません。
func (x *XorShift) init(seed uint64) {
	for i := range x.s {
		seed += 0x9e3779b97f4a7c15
		x.s[i] = mix64(seed)
	}
	x.p = 0
}

// mix64 は64ビット値を攪拌します。
func mix64(v uint64) uint64 {
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}

// Uint64 は次の64ビット符号なし乱数を生成して返します。
func (x *XorShift) Uint64() uint64 {
	s0 := x.s[x.p]
	x.p = (x.p + 1) & 15
	s1 := x.s[x.p]
	s1 ^= s1 << 31
	x.s[x.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)
	return x.s[x.p] * 1181783497276652981
}

// Uint32 は次の32ビット符号なし乱数を返します。
func (x *XorShift) Uint32() uint32 {
	return uint32(x.Uint64() >> 32)
}

// Int63 は rand.Source のために63ビットの非負整数を返します。
func (x *XorShift) Int63() int64 {
	return int64(x.Uint64() >> 1)
}

// Seed は rand.Source のために内部状態を初期化し直します。
func (x *XorShift) Seed(seed int64) {
	x.init(uint64(seed))
}
