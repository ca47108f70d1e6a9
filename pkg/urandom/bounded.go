package urandom

import (
	"math/bits"
)

// 範囲写像はすべて乗算ベースで行う。sample % length の剰余写像は
// length が2の冪でない場合に小さい値へ偏るため使用しない。
// 乗算写像はサンプルの自域内での位置を [0, length) 内の位置へ
// 拡縮するため、この欠陥がない。

// scaled32 は [0, length) の一様な値を返します。length は 1<<32 以下で
// なければなりません。32ビットのサンプル1つを64ビット中間値で拡縮します。
func scaled32(src Source, length uint64) uint64 {
	return length * uint64(src.Uint32()) >> 32
}

// scaled64 は [0, length) の一様な値を返します。length の大きさに応じて
// 32/48/64ビットのエントロピーを段階的に集め、集めた幅 2^k に対して
// (length * raw) / 2^k を計算します。length が 1<<32 を超える場合の
// 乗算は64ビットに収まらないため、bits.Mul64 による128ビット中間値を
// 使います。追加の16ビットは新しい32ビットサンプルの下位から取ります。
func scaled64(src Source, length uint64) uint64 {
	raw := uint64(src.Uint32())
	if length <= 1<<32 {
		return length * raw >> 32
	}
	raw = raw<<16 | uint64(src.Uint32()&0xffff)
	if length <= 1<<48 {
		hi, lo := bits.Mul64(length, raw)
		return hi<<16 | lo>>48
	}
	raw = raw<<16 | uint64(src.Uint32()&0xffff)
	hi, _ := bits.Mul64(length, raw)
	return hi
}

func int32Range(op string, src Source, min, max int32) int32 {
	checkSource(src)
	if min > max {
		panic(&RangeError{Op: op, Min: min, Max: max})
	}
	if min == max {
		return min
	}
	length := uint64(int64(max) - int64(min))
	return int32(int64(min) + int64(scaled32(src, length)))
}

func uint32Range(op string, src Source, min, max uint32) uint32 {
	checkSource(src)
	if min > max {
		panic(&RangeError{Op: op, Min: min, Max: max})
	}
	if min == max {
		return min
	}
	length := uint64(max) - uint64(min)
	return min + uint32(scaled32(src, length))
}

func int64Range(op string, src Source, min, max int64) int64 {
	checkSource(src)
	if min > max {
		panic(&RangeError{Op: op, Min: min, Max: max})
	}
	if min == max {
		return min
	}
	length := uint64(max) - uint64(min)
	return int64(uint64(min) + scaled64(src, length))
}

func uint64Range(op string, src Source, min, max uint64) uint64 {
	checkSource(src)
	if min > max {
		panic(&RangeError{Op: op, Min: min, Max: max})
	}
	if min == max {
		return min
	}
	return min + scaled64(src, max-min)
}

// Int32 は src から32ビット符号付き整数の全域に一様な乱数を返します。
func Int32(src Source) int32 {
	checkSource(src)
	return int32(src.Uint32())
}

// Int32N は src から [0, max) の一様乱数を返します。
// max が負の場合は *RangeError で panic します。
func Int32N(src Source, max int32) int32 {
	return int32Range("Int32N", src, 0, max)
}

// Int32Range は src から [min, max) の一様乱数を返します。
// min > max の場合は、乱数を消費する前に *RangeError で panic します。
// min == max の場合は乱数を消費せず min を返します。
func Int32Range(src Source, min, max int32) int32 {
	return int32Range("Int32Range", src, min, max)
}

// Uint32 は src から32ビット符号なし整数の全域に一様な乱数を返します。
func Uint32(src Source) uint32 {
	checkSource(src)
	return src.Uint32()
}

// Uint32N は src から [0, max) の一様乱数を返します。
// max が 0 の場合は乱数を消費せず 0 を返します。
func Uint32N(src Source, max uint32) uint32 {
	return uint32Range("Uint32N", src, 0, max)
}

// Uint32Range は src から [min, max) の一様乱数を返します。
// min > max の場合は、乱数を消費する前に *RangeError で panic します。
// min == max の場合は乱数を消費せず min を返します。
func Uint32Range(src Source, min, max uint32) uint32 {
	return uint32Range("Uint32Range", src, min, max)
}

// Int64 は src から64ビット符号付き整数の全域に一様な乱数を返します。
func Int64(src Source) int64 {
	checkSource(src)
	return int64(src.Uint64())
}

// Int64N は src から [0, max) の一様乱数を返します。
// max が負の場合は *RangeError で panic します。
func Int64N(src Source, max int64) int64 {
	return int64Range("Int64N", src, 0, max)
}

// Int64Range は src から [min, max) の一様乱数を返します。
// min > max の場合は、乱数を消費する前に *RangeError で panic します。
// min == max の場合は乱数を消費せず min を返します。
func Int64Range(src Source, min, max int64) int64 {
	return int64Range("Int64Range", src, min, max)
}

// Uint64 は src から64ビット符号なし整数の全域に一様な乱数を返します。
func Uint64(src Source) uint64 {
	checkSource(src)
	return src.Uint64()
}

// Uint64N は src から [0, max) の一様乱数を返します。
// max が 0 の場合は乱数を消費せず 0 を返します。
func Uint64N(src Source, max uint64) uint64 {
	return uint64Range("Uint64N", src, 0, max)
}

// Uint64Range は src から [min, max) の一様乱数を返します。
// min > max の場合は、乱数を消費する前に *RangeError で panic します。
// min == max の場合は乱数を消費せず min を返します。
func Uint64Range(src Source, min, max uint64) uint64 {
	return uint64Range("Uint64Range", src, min, max)
}
