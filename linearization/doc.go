// Package linearization maps the nodes of a knapsack packing tree onto a dense
// ordinal range and back.
//
// The packing tree for n items holds every inclusion vector of length n; the
// children of a packing are the packings that add exactly one item with an
// index above its last packed item. Ordinals number the nodes in depth-first
// order, so the subtree below any node is a run of consecutive ordinals whose
// length BranchSize computes from the vector alone. A search that rejects a
// node can therefore jump over its whole subtree with one addition.
//
// Converting between an ordinal and its vector goes through a DigitSequence.
// Three coordinates at a time are collapsed into one octal digit, giving
// ceil(n/3) collapse levels; the coarsest level holds only 2 or 4 digit values
// when n is not a multiple of 3. A Table precomputes, for every level, where
// each digit's run of ordinals starts. Digits are enumerated in the order
//
//	0 1 3 7 5 2 6 4
//
// which is the depth-first order of the 3-item base subtree. The compound
// digits 7, 5, 6 and 4 (last coordinate of their group set) own a body of
// DomainPopulation(level) ordinals: the first part belongs to the compound
// digit itself, the second to its partner digit 3, 1, 2 or 0 whenever some
// finer digit is non-zero.
//
// A Table is immutable after NewTable returns and may be shared by any number
// of goroutines. Release drops its offsets; later calls fail.
package linearization
