// Package rgbtree implements an RGB tree: a generalization of the
// red-black tree admitting an integer color parameter N >= 1, giving
// N+1 colors (0..N). Larger N trades query depth for fewer structural
// changes per mutation; N=1 collapses to a standard red-black tree.
//
// The tree is intrusive: callers embed a *Link[K] in their own record
// type and hand the tree a pure getKey projection to recover the key
// from a link, plus a total-order compare function. The tree never
// allocates and never owns a record's storage; it only threads the
// color/children/parent fields inside the Link the caller already
// owns.
//
// The structure is single-threaded: no operation synchronizes, blocks,
// or suspends, and the caller must serialize access externally if a
// tree is shared across goroutines.
package rgbtree
