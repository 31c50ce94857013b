// Package hashtable is lesson 4: two hash maps from string keys to values, built
// from scratch so the collision strategies can be compared side by side.
//
// What:
//
//   - Chained: every bucket is a small slice of entries; colliding keys share a
//     bucket. The table doubles once the load factor len/cap exceeds 0.75.
//   - OpenAddressed: one flat slot array with linear probing. Deleted slots
//     become tombstones so probe chains stay intact. Once (live+tombstones)/cap
//     exceeds 0.5 the slots are rebuilt without tombstones: at the same size when
//     at most a quarter of them are live, doubled otherwise.
//
// Both hash keys with xxhash64 and reduce the digest with a power-of-two mask.
//
// Complexity:
//
//   - Put, Get, Delete: O(1) expected, O(n) worst case.
//   - Keys: O(n log n), returned sorted.
//
// Errors:
//
//   - ErrBadCapacity: WithCapacity was given a value below 1.
package hashtable
