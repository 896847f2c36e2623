package movieconv

// Famtasia packs controller bits as right, left, up, down, B, A, select,
// start from bit 0 up; FCEUX wants A, B, select, start, up, down, left,
// right.  buttonBitMap[i] is the destination bit for source bit i.
var buttonBitMap = [8]int{7, 6, 4, 5, 1, 0, 2, 3}

// remapTable holds the remapped value for every possible input byte.
var remapTable [256]byte

func init() {
	for value := 0; value < 256; value++ {
		remapTable[value] = remapBits(byte(value))
	}
}

// remapBits moves each Famtasia button bit to its FCEUX position.
func remapBits(value byte) byte {
	var result byte
	for bit := 0; bit < 8; bit++ {
		if value&(1<<bit) != 0 {
			result |= 1 << buttonBitMap[bit]
		}
	}
	return result
}

// RemapButtons translates one Famtasia controller byte into FCEUX bit
// order.
func RemapButtons(value byte) byte {
	return remapTable[value]
}
