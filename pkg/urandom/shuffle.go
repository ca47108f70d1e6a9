package urandom

import (
	"iter"
	"slices"
)

// randIndex は [0, n) の一様な添字を返します。n >= 1 であること。
// ストリーミング版と in-place 版が同一の乱数消費順序になるよう、
// どちらもこの1箇所を経由します。
func randIndex(src Source, n int) int {
	return int(Uint64N(src, uint64(n)))
}

// Shuffle は seq の要素を一様ランダムな順序で並べた新しいスライスを
// 返します。inside-out Fisher–Yates を1パスで適用するため、列の長さを
// 事前に知る必要がありません。i 番目の要素に対し [0, i+1) の添字 j を
// 引き、j == i ならそのまま末尾へ、そうでなければ位置 j の要素を末尾へ
// 退避してから新しい要素を位置 j に置きます。
// seq が nil の場合は ErrNilSequence で panic します。
func Shuffle[T any](src Source, seq iter.Seq[T]) []T {
	checkSource(src)
	if seq == nil {
		panic(ErrNilSequence)
	}

	var out []T
	i := 0
	for v := range seq {
		j := randIndex(src, i+1)
		if j == i {
			out = append(out, v)
		} else {
			out = append(out, out[j])
			out[j] = v
		}
		i++
	}
	return out
}

// ShuffleSlice は Shuffle のスライス版です。seq 自体は変更されません。
// 同一シードの生成器に対して Shuffle と同じ乱数消費順序になります。
func ShuffleSlice[T any](src Source, seq []T) []T {
	return Shuffle(src, slices.Values(seq))
}

// ShuffleInPlace は arr をその場で一様ランダムに並べ替えます。
// i 番目ごとに [0, i+1) の添字 j を引き、j != i なら位置 i と j を
// 交換します。部分範囲だけを並べ替えるにはスライス式
// arr[start:start+length] を渡します。
// 同一シードの生成器に対して、Shuffle が同じ要素列から作る並びと
// 同一の結果になります。
func ShuffleInPlace[T any](src Source, arr []T) {
	checkSource(src)
	for i := range arr {
		j := randIndex(src, i+1)
		if j != i {
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
}
