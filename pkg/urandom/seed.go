package urandom

import (
	"time"

	"github.com/spacemonkeygo/monotime"
)

// DefaultSeeds は現在時刻と単調増加クロックからシード列を導出します。
// プロセス全体で共有される唯一のシード供給源で、生成器の状態とは独立
// した読み取り専用の操作です。近接した2回の呼び出しが必ず異なる列を
// 返す保証はありません。デフォルトシードは利便のためのものであり、
// 一意性を保証するものではないためです。
func DefaultSeeds() []uint32 {
	now := uint64(time.Now().UnixNano())
	tick := uint64(monotime.Monotonic())
	return []uint32{
		uint32(now),
		uint32(now >> 32),
		uint32(tick),
		uint32(tick >> 32),
	}
}
