package urandom

// Source は疑似乱数生成アルゴリズムが実装する能力です。
//
// Uint32 は32ビット符号なし整数の全域に一様な乱数を返し、呼び出しの
// たびに内部状態を進めます。Uint64 は64ビット版で、ネイティブな64ビット
// ステップを持たないアルゴリズムは Compose64 による合成をそのまま
// 使用できます。どちらの操作も失敗しません。
type Source interface {
	Uint32() uint32
	Uint64() uint64
}

// Compose64 は2回の Uint32 呼び出しから64ビット値を合成します。
// 先に取り出した値が上位32ビットになります。
func Compose64(src Source) uint64 {
	hi := uint64(src.Uint32())
	lo := uint64(src.Uint32())
	return hi<<32 | lo
}

func checkSource(src Source) {
	if src == nil {
		panic(ErrNilSource)
	}
}
