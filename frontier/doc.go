// Package frontier provides the containers that hold generated-but-not-yet-expanded
// search nodes.
//
// Overview:
//
//   - Priority is an indexed binary min-heap keyed by a caller-chosen identity K
//     (usually a search state). It supports Push, Pop (extract-minimum), Contains,
//     Get and Replace (decrease-key) in O(log n) or better.
//   - Queue is a FIFO frontier and Stack is a LIFO frontier. Both keep an identity
//     index so membership tests are O(1).
//   - All three satisfy the Frontier interface, so a search loop can be written once
//     and parameterized by frontier discipline.
//
// Determinism:
//
//   - Priority orders entries by the pair (priority, seq), where seq is a
//     monotonically increasing insertion counter. Among equal priorities the
//     earliest-inserted entry is popped first, so repeated runs over identical
//     input pop identical sequences.
//   - Replace assigns a fresh seq: the replacement is treated as a new insertion.
//
// Complexity:
//
//   - Priority: Push/Pop/Replace O(log n), Contains/Get O(1), memory O(n).
//   - Queue/Stack: Push/Pop O(1) amortized, Contains/Get O(1), memory O(n).
//
// Errors (sentinel):
//
//   - ErrEmptyFrontier: Pop or Peek on an empty frontier.
//   - ErrKeyNotFound:   Replace on a key that is not resident.
//   - ErrDuplicateKey:  Push of a key that is already resident.
//
// Thread safety:
//
//   - Frontiers are owned by a single search invocation and are not safe for
//     concurrent use.
package frontier
