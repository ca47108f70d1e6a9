package urandom

import (
	"math/rand"
)

// randSource は math/rand の生成器を Source として扱うアダプタです。
// 32ビット語は Intn(1<<16) による16ビットの乱数2つをシフトで合成して
// 作るため、範囲写像の結果は Source を直接実装する生成器と参照的に
// 等価になります。
type randSource struct {
	r *rand.Rand
}

// FromRand は *rand.Rand を Source に適合させて返します。
// r が nil の場合は ErrNilSource で panic します。
func FromRand(r *rand.Rand) Source {
	if r == nil {
		panic(ErrNilSource)
	}
	return &randSource{r: r}
}

// Uint32 は次の32ビット符号なし乱数を返します。
func (s *randSource) Uint32() uint32 {
	hi := uint32(s.r.Intn(1 << 16))
	lo := uint32(s.r.Intn(1 << 16))
	return hi<<16 | lo
}

// Uint64 は次の64ビット符号なし乱数を返します。
func (s *randSource) Uint64() uint64 {
	return Compose64(s)
}
