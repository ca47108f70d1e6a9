package urandom

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// Mersenne はメルセンヌ・ツイスタ (MT19937) 疑似乱数生成器です。
// 624語の状態ベクタとカーソルを持ち、カーソルが 624 に達すると全語を
// 捻り直してから次の値を取り出します。捻り直しは完全に内部の処理で、
// 呼び出し側からは観測できません。
type Mersenne struct {
	mt  [mtN]uint32
	mti int
}

var _ Source = (*Mersenne)(nil)

// NewMersenne はプロセス由来のデフォルトシード (DefaultSeeds) で
// 初期化した Mersenne を返します。
func NewMersenne() *Mersenne {
	return NewMersenneKey(DefaultSeeds())
}

// NewMersenneSeed は単一の32ビットシードで初期化した Mersenne を返します。
func NewMersenneSeed(seed uint32) *Mersenne {
	r := &Mersenne{}
	r.init(seed)
	return r
}

// NewMersenneKey は任意長のシード列で初期化した Mersenne を返します。
// 2パスの攪拌により、シード語は個数や位置によらず等しく初期状態へ
// 寄与します。単語のシードを単純初期化する NewMersenneSeed とは
// 異なる状態になります。key が空の場合は ErrEmptySeed で panic します。
func NewMersenneKey(key []uint32) *Mersenne {
	if len(key) == 0 {
		panic(ErrEmptySeed)
	}
	r := &Mersenne{}
	r.initKey(key)
	return r
}

// init は指定されたシードで状態ベクタを初期化します。
func (r *Mersenne) init(seed uint32) {
	r.mt[0] = seed
	for r.mti = 1; r.mti < mtN; r.mti++ {
		r.mt[r.mti] = (1812433253*(r.mt[r.mti-1]^(r.mt[r.mti-1]>>30)) + uint32(r.mti))
	}
}

// initKey はシード列から状態ベクタを初期化します。
// 固定シード 19650218 での単純初期化のあと、シード語を加える攪拌と
// 加えない攪拌の2パスを状態ベクタ全体へ適用します。
func (r *Mersenne) initKey(key []uint32) {
	r.init(19650218)

	i, j := 1, 0
	k := max(mtN, len(key))
	for ; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			r.mt[0] = r.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			r.mt[0] = r.mt[mtN-1]
			i = 1
		}
	}

	r.mt[0] = 0x80000000
}

// Uint32 は次の32ビット符号なし乱数を生成して返します。
func (r *Mersenne) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0x0, mtMatrixA}

	if r.mti >= mtN {
		var kk int

		for kk = 0; kk < mtN-mtM; kk++ {
			y = (r.mt[kk] & mtUpperMask) | (r.mt[kk+1] & mtLowerMask)
			r.mt[kk] = r.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&0x1]
		}
		for ; kk < mtN-1; kk++ {
			y = (r.mt[kk] & mtUpperMask) | (r.mt[kk+1] & mtLowerMask)
			r.mt[kk] = r.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&0x1]
		}
		y = (r.mt[mtN-1] & mtUpperMask) | (r.mt[0] & mtLowerMask)
		r.mt[mtN-1] = r.mt[mtM-1] ^ (y >> 1) ^ mag01[y&0x1]

		r.mti = 0
	}

	y = r.mt[r.mti]
	r.mti++

	// Tempering
	y ^= (y >> 11)
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= (y >> 18)

	return y
}

// Uint64 は2回の Uint32 呼び出しを合成した64ビット符号なし乱数を返します。
func (r *Mersenne) Uint64() uint64 {
	return Compose64(r)
}

// Int32 は32ビット符号付き整数の全域に一様な乱数を返します。
func (r *Mersenne) Int32() int32 {
	return Int32(r)
}

// Int32N は [0, max) の一様乱数を返します。
func (r *Mersenne) Int32N(max int32) int32 {
	return Int32N(r, max)
}

// Int32Range は [min, max) の一様乱数を返します。
func (r *Mersenne) Int32Range(min, max int32) int32 {
	return Int32Range(r, min, max)
}

// Uint32N は [0, max) の一様乱数を返します。
func (r *Mersenne) Uint32N(max uint32) uint32 {
	return Uint32N(r, max)
}

// Uint32Range は [min, max) の一様乱数を返します。
func (r *Mersenne) Uint32Range(min, max uint32) uint32 {
	return Uint32Range(r, min, max)
}

// Int64 は64ビット符号付き整数の全域に一様な乱数を返します。
func (r *Mersenne) Int64() int64 {
	return Int64(r)
}

// Int64N は [0, max) の一様乱数を返します。
func (r *Mersenne) Int64N(max int64) int64 {
	return Int64N(r, max)
}

// Int64Range は [min, max) の一様乱数を返します。
func (r *Mersenne) Int64Range(min, max int64) int64 {
	return Int64Range(r, min, max)
}

// Uint64N は [0, max) の一様乱数を返します。
func (r *Mersenne) Uint64N(max uint64) uint64 {
	return Uint64N(r, max)
}

// Uint64Range は [min, max) の一様乱数を返します。
func (r *Mersenne) Uint64Range(min, max uint64) uint64 {
	return Uint64Range(r, min, max)
}

// FillBytes は buf の各バイトに一様乱数を書き込みます。
func (r *Mersenne) FillBytes(buf []byte) {
	FillBytes(r, buf)
}

// FillNonZeroBytes は buf の各バイトに [1, 256) の乱数を書き込みます。
func (r *Mersenne) FillNonZeroBytes(buf []byte) {
	FillNonZeroBytes(r, buf)
}
