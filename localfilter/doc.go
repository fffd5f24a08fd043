// Package localfilter provides a per-base-zone 64-bit deduplication
// filter used while emitting adjacency edges during eager graph
// construction: for each base flat zone, Contains/Insert dedupe
// candidate neighbor slot indices within that zone's forward-edge scan
// before they are appended to the zone's adjacency set.
//
// The filter keeps a 64-bit bitmask keyed by the low 6 bits of each
// inserted index, used as a fast reject, plus an exact list of the first
// 64 indices inserted, scanned linearly when the index's bit is set. Once
// more than 64
// distinct entries have been inserted for one base zone it degrades
// gracefully: further inserts are simply not recorded (and so will not
// be deduplicated), on the expectation that eventual finalization of the
// destination adjacency sets performs a proper sort+dedup pass that
// cleans up any duplicates the filter missed above that threshold.
package localfilter
