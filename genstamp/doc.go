// Package genstamp provides an O(1) amortized "logically cleared"
// visited-marker array, used wherever a traversal needs a fresh
// mark/unmark pass without paying an O(n) clear every time.
//
// A Set holds one generation counter per slot. Mark stamps a slot with
// the set's current generation; IsMarked compares a slot's stamp against
// the current generation. ResetAll advances the generation instead of
// zeroing every slot, so a prior Mark is forgotten for free — except
// once every 2^32-1 resets, when the generation counter would wrap and
// every stamp is zeroed explicitly to restore the invariant.
package genstamp
