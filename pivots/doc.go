// Package pivots implements FIND-PIVOTS (spec §4.5): k synchronous
// rounds of bounded relaxation from a frontier S, followed by selection
// of a small pivot set P whose predecessor-forest subtrees cover the
// vertices reached. Pivot selection is what lets BMSSP shrink its active
// frontier by a factor of k at each recursion level instead of
// processing one vertex at a time.
package pivots
