// Package jpegquality estimates the quality setting a JPEG stream was encoded
// with by comparing its quantization tables against the standard tables from
// Annex K of the JPEG specification.
package jpegquality

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

var (
	ErrInvalidJPEG  = errors.New("invalid JPEG header")
	ErrWrongTable   = errors.New("wrong size for quantization table")
	ErrShortSegment = errors.New("short segment length")
	ErrShortDQT     = errors.New("section DQT is too short")
)

const (
	markerSOI = 0xffd8
	markerEOI = 0xffd9
	markerSOS = 0xffda
	markerDQT = 0xffdb
)

// Standard luminance quantization table, in zigzag order sums are order
// independent so natural order works just as well.
var stdLuminance = [64]int{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

type jpegReader struct {
	rs      io.ReadSeeker
	quality int
}

// New reads JPEG stream and estimates its encoding quality. Reader is always
// rewound first, so repeated calls on the same stream are safe.
func New(rs io.ReadSeeker) (*jpegReader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	jr := &jpegReader{rs: rs}
	if jr.readMarker() != markerSOI {
		return nil, ErrInvalidJPEG
	}

	q, err := jr.scanQuality()
	if err != nil {
		return nil, err
	}
	jr.quality = q
	return jr, nil
}

// NewWithBytes is like New but works on a byte slice.
func NewWithBytes(data []byte) (*jpegReader, error) {
	return New(bytes.NewReader(data))
}

// Quality returns estimated encoding quality in [1, 100].
func (jr *jpegReader) Quality() int {
	return jr.quality
}

// readMarker reads next two bytes as a big-endian marker. Returns 0 when the
// stream ends prematurely.
func (jr *jpegReader) readMarker() uint16 {
	var buf [2]byte
	if _, err := io.ReadFull(jr.rs, buf[:]); err != nil {
		return 0
	}
	return binary.BigEndian.Uint16(buf[:])
}

// scanQuality walks marker segments until entropy coded data starts, parsing
// quantization tables along the way.
func (jr *jpegReader) scanQuality() (int, error) {
	for {
		marker := jr.readMarker()
		if marker == 0 || marker&0xff00 != 0xff00 {
			return 0, ErrInvalidJPEG
		}
		if marker == markerEOI || marker == markerSOS {
			return 0, ErrShortDQT
		}

		var lbuf [2]byte
		if _, err := io.ReadFull(jr.rs, lbuf[:]); err != nil {
			return 0, ErrShortSegment
		}
		length := int(binary.BigEndian.Uint16(lbuf[:]))
		if length < 2 {
			return 0, ErrShortSegment
		}

		payload := make([]byte, length-2)
		if _, err := io.ReadFull(jr.rs, payload); err != nil {
			return 0, ErrShortSegment
		}

		if marker != markerDQT {
			continue
		}
		return qualityFromDQT(payload)
	}
}

// qualityFromDQT estimates quality from the first (luminance) table of a DQT
// segment by inverting the libjpeg table scaling formula.
func qualityFromDQT(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, ErrShortDQT
	}

	precision := int(payload[0] >> 4)
	if precision > 1 {
		return 0, ErrWrongTable
	}

	size := 64
	if precision == 1 {
		size = 128
	}
	if len(payload) < 1+size {
		return 0, ErrShortDQT
	}

	table := payload[1 : 1+size]
	sum := 0
	if precision == 1 {
		for i := 0; i < size; i += 2 {
			sum += int(binary.BigEndian.Uint16(table[i:]))
		}
	} else {
		for _, v := range table {
			sum += int(v)
		}
	}

	base := 0
	for _, v := range stdLuminance {
		base += v
	}

	// scale factor in percent, rounded
	scale := (sum*100*2 + base) / (base * 2)
	if scale <= 0 {
		return 100, nil
	}

	var quality int
	if scale >= 100 {
		quality = 5000 / scale
	} else {
		quality = (200 - scale) / 2
	}
	if quality < 1 {
		quality = 1
	} else if quality > 100 {
		quality = 100
	}
	return quality, nil
}
