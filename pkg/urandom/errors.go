package urandom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange は min > max の範囲が指定された場合のエラー
	ErrInvalidRange = errors.New("urandom: min must not be greater than max")

	// ErrNilSource は Source が nil の場合のエラー
	ErrNilSource = errors.New("urandom: source must not be nil")

	// ErrNilBuffer はバッファが nil の場合のエラー
	ErrNilBuffer = errors.New("urandom: buffer must not be nil")

	// ErrNilSequence は列が nil の場合のエラー
	ErrNilSequence = errors.New("urandom: sequence must not be nil")

	// ErrEmptySeed はシード列が空の場合のエラー
	ErrEmptySeed = errors.New("urandom: seed material must not be empty")
)

// RangeError は範囲指定が不正な場合のエラー
type RangeError struct {
	Op  string // 実行していた操作
	Min any    // 指定された下限
	Max any    // 指定された上限
}

// Error はエラーメッセージを返します
func (e *RangeError) Error() string {
	return fmt.Sprintf("urandom: %s [%v, %v): %v", e.Op, e.Min, e.Max, ErrInvalidRange)
}

// Unwrap は元のエラーを返します
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}
