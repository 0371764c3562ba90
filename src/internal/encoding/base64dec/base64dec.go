// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package base64dec

import "errors"

var (
	// ErrInvalidEncoding indicates the input contains a character outside the
	// base64 alphabet, misplaced padding, or a trailing group shorter than four
	// characters.
	ErrInvalidEncoding = errors.New("base64dec: invalid base64 encoding")

	// ErrBufferTooSmall indicates the destination buffer cannot hold the
	// decoded output.
	ErrBufferTooSmall = errors.New("base64dec: output buffer too small")
)

// DecodedLen returns the maximum number of bytes Decode can produce for an
// input of n characters. The exact output may be up to two bytes shorter
// depending on padding.
func DecodedLen(n int) int { return 3 * ((n + 3) / 4) }

// sixBits maps a base64 alphabet character to its 6-bit value.
func sixBits(c byte) (byte, bool) {
	switch {
	case 'A' <= c && c <= 'Z':
		return c - 'A', true
	case 'a' <= c && c <= 'z':
		return c - 'a' + 26, true
	case '0' <= c && c <= '9':
		return c - '0' + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	}
	return 0, false
}

// Decode converts a base64 text block to raw bytes.
//
// The input must be a whole number of 4-character groups; only the final
// group may carry one or two '=' padding characters, each suppressing one
// trailing output byte. Any other shape fails with [ErrInvalidEncoding].
func Decode(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := DecodeInto(dst, s)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeInto decodes s into dst and returns the number of bytes written.
// It fails with [ErrBufferTooSmall] rather than writing past len(dst).
func DecodeInto(dst []byte, s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	if len(s)%4 != 0 {
		return 0, ErrInvalidEncoding
	}

	n := 0
	for off := 0; off < len(s); off += 4 {
		group := s[off : off+4]
		last := off+4 == len(s)

		var val [4]byte
		pad := 0
		for i := 0; i < 4; i++ {
			c := group[i]
			if c == '=' {
				// Padding may only occupy the last two positions of the
				// final group.
				if !last || i < 2 {
					return 0, ErrInvalidEncoding
				}
				pad++
				continue
			}
			if pad > 0 {
				return 0, ErrInvalidEncoding
			}
			v, ok := sixBits(c)
			if !ok {
				return 0, ErrInvalidEncoding
			}
			val[i] = v
		}

		// 32bit -> 24bit
		out := 3 - pad
		if n+out > len(dst) {
			return 0, ErrBufferTooSmall
		}
		dst[n] = val[0]<<2 | val[1]>>4
		if out > 1 {
			dst[n+1] = val[1]<<4 | val[2]>>2
		}
		if out > 2 {
			dst[n+2] = val[2]<<6 | val[3]
		}
		n += out
	}

	return n, nil
}
