package trie

/*

# Prefix trie for string sets

This package provides a byte-keyed prefix tree used as an exact string set:
insert, search, prefix query, removal with pruning, ordered traversal, and
word-set algebra.

## Ownership

Every node exclusively owns its children; there are no shared subtrees. A
node also carries a back-reference to its parent, used only to walk upward
while pruning after Remove. The parent link is navigational, never an
ownership edge.

## Word set semantics

The set represented by a trie is exactly the set of root-to-terminal paths.
Remove prunes childless non-terminal nodes transitively toward the root, so
no node survives that is not on the path to some terminal node. Nodes shared
with other words are never pruned.

Equality, union and difference are defined on word sets, not tree shapes:
two tries built by different insertion orders compare equal when they hold
the same words. Union and difference enumerate the right operand's words and
replay them (Insert or Remove) against the left operand, so they inherit
Insert's idempotence and Remove's absent-word no-op for free.

## Traversal

BFS visits level by level with an explicit queue; DFS visits pre-order.
Siblings are visited in ascending label order in both, which also fixes the
serialization order. Visitors may mutate a node's Label or Terminal flag but
must not alter the tree's connectivity mid-traversal.

*/
