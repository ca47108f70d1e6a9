// Package urandom は決定論的な疑似乱数生成器と、その出力を偏りなく
// 任意の範囲へ写像するレイヤーを提供します。
//
// 主な機能:
//   - Source: 乱数生成アルゴリズムが実装する共通インターフェース
//   - Mersenne: メルセンヌ・ツイスタ (MT19937) 疑似乱数生成器
//   - XorShift: xorshift1024* 疑似乱数生成器
//   - Int32N / Uint64Range など: 剰余バイアスを避けた範囲付き乱数
//   - FillBytes / FillNonZeroBytes: バイト列の乱数充填
//   - Shuffle / ShuffleInPlace: Fisher–Yates による一様なシャッフル
//
// 範囲付きの操作はすべて Source を引数に取る静的関数としても提供される
// ため、このパッケージの生成器以外 (FromRand で適合させた math/rand の
// 生成器など) に対しても同じ写像規則が適用できます。
//
// 各生成器の内部状態はサンプリングのたびに書き換えられます。外部で
// 排他制御を行わない限り、1つの生成器を複数ゴルーチンから同時に使用
// してはいけません。
package urandom
