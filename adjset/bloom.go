package adjset

// tinyBloom is a 64-bit, 2-hash Bloom filter scoped to one zone's
// adjacency set. It never produces a false negative: MaybeHas only ever
// says "definitely absent" when that is certain. Below a small size
// threshold it is disabled outright (MaybeHas always answers "maybe"),
// since at that scale a full scan is cheaper than hashing and the
// filter buys nothing.
type tinyBloom struct {
	bits uint64
}

// smallSetThreshold is the size below which the Bloom filter is skipped
// entirely in favor of a direct scan.
const smallSetThreshold = 8

func splitmix32(x uint32) uint32 {
	x += 0x9e3779b9
	x = (x ^ (x >> 16)) * 0x85ebca6b
	x = (x ^ (x >> 13)) * 0xc2b2ae35
	x ^= x >> 16

	return x
}

func bloomHash1(v int) uint32 {
	return splitmix32(uint32(v))
}

func bloomHash2(v int) uint32 {
	return splitmix32(uint32(v) ^ 0x9e3779b9)
}

func bloomBit(h uint32) uint64 {
	return uint64(1) << (h & 63)
}

func (b *tinyBloom) clear() {
	b.bits = 0
}

func (b *tinyBloom) add(v int) {
	b.bits |= bloomBit(bloomHash1(v)) | bloomBit(bloomHash2(v))
}

// maybeHas reports whether v could be present, given sizeHint (the
// owning set's current element count). A false result is a guarantee
// that v is absent.
func (b *tinyBloom) maybeHas(v int, sizeHint int) bool {
	if sizeHint < smallSetThreshold {
		return true
	}
	mask := bloomBit(bloomHash1(v)) | bloomBit(bloomHash2(v))

	return b.bits&mask == mask
}

func (b *tinyBloom) rebuild(values []int) {
	b.clear()
	for _, v := range values {
		b.add(v)
	}
}
