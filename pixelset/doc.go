// Package pixelset manages disjoint sets of pixel ids ("flat zones")
// using four parallel arrays and O(1) circular-linked-list splicing,
// rather than a conventional union-find forest. It is the shared pixel
// bookkeeping substrate consumed by both flat-zone graph strategies.
//
// Every pixel starts in its own singleton set, addressed by a stable
// slot index. MergeSetsByRep merges two sets in O(1): it swaps the
// "next" pointers of the two sets' representative pixels, splicing their
// circular pixel lists together, and marks the losing slot retired
// (index -1) without shifting or renumbering any other slot. Because
// retirement never renumbers surviving slots, a slot index handed out
// before a merge remains valid to reference the same representative
// pixel after it — callers that cache a slot must still confirm it was
// not the losing side of a merge before reusing it.
//
// ShrinkToNumSets, called once after a bulk construction pass (e.g. a
// flood fill) has written the true zones into the first n slots
// directly through a View, truncates the slot arrays to exactly those n
// slots.
package pixelset
