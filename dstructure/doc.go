// Package dstructure implements the block-based partial-sort queue at the
// heart of the BMSSP recursion (spec §4.3): two ordered sequences of
// blocks, D0 and D1, supporting INSERT, BATCH_PREPEND, and PULL with
// amortized O(log(N/M)) cost per item rather than the Θ(log n) a fully
// sorted priority queue would pay.
//
// Every item in D0 has a key strictly below every item in D1; within a
// block items are unordered. Blocks are kept near a target size M, the
// parameter the BMSSP recursion sets to 2^((level-1)*t) per frame, and
// grow by appending until they overflow M, at which point they split
// around their median. A vertex appears at most once across the whole
// structure; inserting a smaller key for an already-present vertex
// supersedes the old entry, a larger or equal key is a no-op.
package dstructure
