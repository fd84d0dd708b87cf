// doc.go - top level documentation
//
// (c) Sudhi Herle 2018
//
// License GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package oaht implements a generic open addressing hash table with
// linear probing and automatic growth.
//
// Keys must satisfy the Hashable constraint: they are comparable and
// produce a deterministic digest. The package ships a few key types:
//    1. Int: identity digest
//    2. String: DJB2 digest (http://www.cse.yorku.ca/~oz/hash.html)
//    3. SipString: siphash-2-4 keyed by a per-process random salt
//    4. FastString: fasthash with a fixed seed
//
// The table starts with 11 slots and grows to 2L+1 slots whenever an
// insert finds every slot occupied; growth rehashes every entry into
// the new backing array. There is no delete operation and hence no
// tombstones: a probe run that reaches an empty slot proves the key is
// absent.
//
// A Table is not safe for concurrent use. Callers must serialize
// access themselves.
package oaht
