package urandom

// FillBytes は buf の各バイトに一様乱数を書き込みます。
// 1バイトごとに32ビットのサンプルを1つ消費し、その下位8ビットを
// 使います。buf が nil の場合は ErrNilBuffer で panic します。
// 長さ0の (nil でない) buf は何もせず乱数も消費しません。
func FillBytes(src Source, buf []byte) {
	checkSource(src)
	if buf == nil {
		panic(ErrNilBuffer)
	}
	for i := range buf {
		buf[i] = byte(src.Uint32())
	}
}

// FillNonZeroBytes は buf の各バイトに [1, 256) の一様乱数を書き込みます。
// ゼロバイトは出現しません。buf が nil の場合は ErrNilBuffer で panic
// します。
func FillNonZeroBytes(src Source, buf []byte) {
	checkSource(src)
	if buf == nil {
		panic(ErrNilBuffer)
	}
	for i := range buf {
		buf[i] = byte(Uint32Range(src, 1, 256))
	}
}
