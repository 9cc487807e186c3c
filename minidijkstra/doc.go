// Package minidijkstra implements the bounded, multi-source Dijkstra used
// as the BMSSP base case (spec §4.4): a standard binary-heap Dijkstra
// seeded from every vertex of a frontier at its current tentative
// distance, restricted to finalizing vertices whose distance stays
// strictly below an upper bound B, and capped at a fixed number of
// finalizations.
//
// Complexity: O((|S| + E') log(|S| + E')) where E' is the number of
// edges actually scanned before the cap or bound stops exploration;
// space O(|S| + E') for the heap, since decrease-key is lazy and stale
// entries stay queued until popped.
package minidijkstra
