package urandom

// cycleSource はあらかじめ与えた32ビット値を循環的に返すスタブです。
// 極端な値 (0, 0xFFFFFFFF, 単一ビットのパターンなど) を注入して
// 範囲写像の境界動作を検証するために使います。n は Uint32 の呼び出し
// 回数で、消費されたサンプル数の検証にも使えます。
type cycleSource struct {
	vals []uint32
	n    int
}

var _ Source = (*cycleSource)(nil)

func (c *cycleSource) Uint32() uint32 {
	v := c.vals[c.n%len(c.vals)]
	c.n++
	return v
}

func (c *cycleSource) Uint64() uint64 {
	return Compose64(c)
}
