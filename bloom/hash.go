package bloom

import "github.com/spaolacci/murmur3"

// hashPair returns the two base hashes for double hashing.
func hashPair(item string) (h1 uint64, h2 uint64) {
	h1, h2 = murmur3.Sum128([]byte(item))
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

// position returns the i-th derived bit index in [0, mBits).
func position(h1, h2 uint64, i uint, mBits uint) uint {
	return uint((h1 + uint64(i)*h2) % uint64(mBits))
}
