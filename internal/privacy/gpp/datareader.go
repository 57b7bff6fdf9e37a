package gpp

import "time"

// DataReader is the single entry point every section schema uses to pull
// typed values out of a decoded section body. It layers the GPP wire
// primitives (fixed integers, Fibonacci integers, bitfields, ranges) on
// top of the raw bitReader cursor.
type DataReader struct {
	r *bitReader
}

func NewDataReader(data []byte) *DataReader {
	return &DataReader{r: newBitReader(data)}
}

func (d *DataReader) readBool() (bool, error) {
	return d.r.readBit()
}

// readFixedInteger reads a big-endian unsigned integer of the given bit
// width. Every wire field width used by a section schema (2, 6, 8, 12,
// 16, 36, ...) goes through this one call.
func (d *DataReader) readFixedInteger(bits int) (uint64, error) {
	return d.r.readBits(bits)
}

// readFibonacciInteger decodes a Zeckendorf-coded integer: one bit per
// Fibonacci term starting at F(1)=1, terminated by two consecutive 1
// bits where the terminating bit itself contributes no value. A term
// that would overflow the accumulator is silently discarded rather than
// erroring; this mirrors the original decoder and only ever matters for
// deliberately malformed input, since no legitimate field approaches 64
// bits of Fibonacci terms.
func (d *DataReader) readFibonacciInteger() (uint64, error) {
	terms := newFibonacciTerms()
	var value uint64
	lastBitWasOne := false
	for {
		bit, err := d.r.readBit()
		if err != nil {
			return 0, err
		}
		if bit && lastBitWasOne {
			break
		}
		term := terms.next()
		if bit {
			if term <= ^uint64(0)-value {
				value += term
			}
		}
		lastBitWasOne = bit
	}
	return value, nil
}

// readString reads n 6-bit characters, each encoding a letter A-Z
// (0 -> 'A', 25 -> 'Z'), used for things like consent_language and
// publisher_country_code.
func (d *DataReader) readString(n int) (string, error) {
	chars := make([]byte, n)
	for i := 0; i < n; i++ {
		v, err := d.readFixedInteger(6)
		if err != nil {
			return "", err
		}
		chars[i] = byte('A') + byte(v)
	}
	return string(chars), nil
}

// readDatetime reads a 36-bit integer counting deciseconds since the
// Unix epoch and returns the corresponding UTC time, truncated to whole
// seconds (the sub-second decisecond is dropped).
func (d *DataReader) readDatetime() (time.Time, error) {
	v, err := d.readFixedInteger(36)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(v)/10, 0).UTC(), nil
}

// readFixedBitfield reads n bits and returns the set of 1-based
// positions whose bit was set.
func (d *DataReader) readFixedBitfield(n int) (IdSet, error) {
	var ids []uint16
	for i := 1; i <= n; i++ {
		bit, err := d.r.readBit()
		if err != nil {
			return IdSet{}, err
		}
		if bit {
			ids = append(ids, uint16(i))
		}
	}
	return NewIdSet(ids), nil
}

// readVariableBitfield reads a 16-bit length prefix followed by a fixed
// bitfield of that length.
func (d *DataReader) readVariableBitfield() (IdSet, error) {
	n, err := d.readFixedInteger(16)
	if err != nil {
		return IdSet{}, err
	}
	return d.readFixedBitfield(int(n))
}

// readIntegerRange reads a 12-bit entry count, then for each entry a
// 1-bit is-group flag and either a 16-bit start/end pair or a single
// 16-bit id.
func (d *DataReader) readIntegerRange() (IdSet, error) {
	count, err := d.readFixedInteger(12)
	if err != nil {
		return IdSet{}, err
	}
	var ids []uint16
	for i := uint64(0); i < count; i++ {
		isGroup, err := d.r.readBit()
		if err != nil {
			return IdSet{}, err
		}
		if isGroup {
			start, err := d.readFixedInteger(16)
			if err != nil {
				return IdSet{}, err
			}
			end, err := d.readFixedInteger(16)
			if err != nil {
				return IdSet{}, err
			}
			for id := start; id <= end; id++ {
				ids = append(ids, uint16(id))
			}
		} else {
			id, err := d.readFixedInteger(16)
			if err != nil {
				return IdSet{}, err
			}
			ids = append(ids, uint16(id))
		}
	}
	return NewIdSet(ids), nil
}

// readFibonacciRange reads a 12-bit entry count, then for each entry a
// 1-bit is-group flag and either a Fibonacci-coded start-offset/length
// pair or a single Fibonacci-coded id, all relative to a running
// last_id anchor.
//
// The non-group branch has a deliberate quirk carried over verbatim:
// the pushed id is last_id + id (using the anchor before this entry),
// but the anchor is then reset to id rather than advanced to last_id +
// id. A run of single-id entries therefore does not accumulate the way
// group entries do.
func (d *DataReader) readFibonacciRange() (IdSet, error) {
	count, err := d.readFixedInteger(12)
	if err != nil {
		return IdSet{}, err
	}
	var ids []uint16
	var lastID uint64
	for i := uint64(0); i < count; i++ {
		isGroup, err := d.r.readBit()
		if err != nil {
			return IdSet{}, err
		}
		if isGroup {
			startOffset, err := d.readFibonacciInteger()
			if err != nil {
				return IdSet{}, err
			}
			length, err := d.readFibonacciInteger()
			if err != nil {
				return IdSet{}, err
			}
			start := lastID + startOffset
			end := start + length
			for id := start; id <= end; id++ {
				ids = append(ids, uint16(id))
			}
			lastID = end
		} else {
			id, err := d.readFibonacciInteger()
			if err != nil {
				return IdSet{}, err
			}
			ids = append(ids, uint16(lastID+id))
			lastID = id
		}
	}
	return NewIdSet(ids), nil
}

// readOptimizedRange reads a 1-bit selector choosing between a
// Fibonacci range and a variable bitfield, whichever the encoder judged
// more compact for the id set being represented.
func (d *DataReader) readOptimizedRange() (IdSet, error) {
	useFib, err := d.r.readBit()
	if err != nil {
		return IdSet{}, err
	}
	if useFib {
		return d.readFibonacciRange()
	}
	return d.readVariableBitfield()
}

// readOptimizedIntegerRange reads a 16-bit max id, then a 1-bit
// selector choosing between an integer range and a fixed bitfield sized
// to that max id.
func (d *DataReader) readOptimizedIntegerRange() (IdSet, error) {
	maxID, err := d.readFixedInteger(16)
	if err != nil {
		return IdSet{}, err
	}
	useRange, err := d.r.readBit()
	if err != nil {
		return IdSet{}, err
	}
	if useRange {
		return d.readIntegerRange()
	}
	return d.readFixedBitfield(int(maxID))
}

// RangeEntry is one element of an array_of_ranges or n_array_of_ranges
// read: a key identifying what the range applies to (a purpose id, in
// every schema that uses this), a range type enumerant whose meaning is
// schema-specific, and the id set itself.
type RangeEntry struct {
	Key       uint8
	RangeType uint8
	Ids       IdSet
}

// readArrayOfRanges reads a 12-bit entry count, then for each entry a
// 6-bit key, a 2-bit range type, and an optimized integer range.
func (d *DataReader) readArrayOfRanges() ([]RangeEntry, error) {
	return d.readRangeEntries(6, 2, d.readOptimizedIntegerRange)
}

// readNArrayOfRanges is the generalized form of readArrayOfRanges used
// by schemas with non-standard key/range-type widths: key is keyBits
// wide, range type is typeBits wide, and ids come from an optimized
// range (Fibonacci range or variable bitfield) rather than an optimized
// integer range.
func (d *DataReader) readNArrayOfRanges(keyBits, typeBits int) ([]RangeEntry, error) {
	return d.readRangeEntries(keyBits, typeBits, d.readOptimizedRange)
}

func (d *DataReader) readRangeEntries(keyBits, typeBits int, readIds func() (IdSet, error)) ([]RangeEntry, error) {
	count, err := d.readFixedInteger(12)
	if err != nil {
		return nil, err
	}
	entries := make([]RangeEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		key, err := d.readFixedInteger(keyBits)
		if err != nil {
			return nil, err
		}
		rangeType, err := d.readFixedInteger(typeBits)
		if err != nil {
			return nil, err
		}
		ids, err := readIds()
		if err != nil {
			return nil, err
		}
		entries = append(entries, RangeEntry{Key: uint8(key), RangeType: uint8(rangeType), Ids: ids})
	}
	return entries, nil
}
