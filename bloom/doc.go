package bloom

/*

# Bloom filter for string membership

This package provides a fixed-capacity Bloom filter over strings, with an
exact confirmation record kept alongside the probabilistic bitset.

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the item is not present.
- If the filter says "maybe present", then the item may or may not be present
  (false positives are possible).

PossiblyContains never produces a false negative; its false-positive rate
grows with the load factor and the hash count k.

## The exact confirmation record

A standard Bloom filter cannot truthfully answer "certainly contains": a set
bit pattern may be the overlap of other items' fingerprints. To support
CertainlyContains, the filter also records every literal string added. This
trades away the sublinear-memory property of the pure bitset for an exact
answer; callers who only need the probabilistic side pay the memory anyway,
so this type is best suited to word lists and deduplication keys rather than
very large streams.

## Hashing

Positions are derived by double hashing: murmur3's 128-bit sum supplies the
two base hashes h1, h2, and position i is

	(h1 + i*h2) mod mBits

for i in [0, k). h2 is forced to 1 when it is zero so that the k positions
do not collapse onto h1.

## Set algebra

Union is lossless with respect to Bloom semantics: OR-ing two bitsets of
identical geometry reconstructs exactly the filter that adding every item of
both operands to one filter would have produced. Intersection is
conservative: the AND of the bitsets may keep bits that no common item set,
so the result can report "maybe present" for items in neither operand's true
intersection, but never the reverse. Both require identical mBits and k and
fail with ErrIncompatibleFilter otherwise.

*/
