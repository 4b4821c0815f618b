// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package ordering

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// Relation-kind tags, mixed in to .Hash() values so that different
// kinds of relation hash differently even when their configurations
// hash alike.
const (
	hashKindNatural uint64 = 1 + iota
	hashKindNative
	hashKindNativeBool
	hashKindNullsFirst
	hashKindNullsLast
	hashKindCompound
	hashKindByKey
	hashKindByNaturalKey
	hashKindByNativeKey
	hashKindStringForm
	hashKindGiven
	hashKindReverse
)

// hash64 hashes a relation-kind tag together with the hashes of the
// relation's configuration, FNV-1a over the little-endian words.
func hash64(tag uint64, parts ...uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], tag)
	_, _ = h.Write(buf[:])
	for _, part := range parts {
		binary.LittleEndian.PutUint64(buf[:], part)
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// hashValue hashes an arbitrary domain value by its formatted form.
// Values that are == always format alike, so this is consistent with
// value equality (the inverse need not hold for hashing).
func hashValue(v any) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprint(h, v)
	return h.Sum64()
}

// KindHash combines an implementation-chosen kind identifier with the
// hashes of a relation's configuration, for implementing
// Ordering.Hash outside of this package.  The kind string should be
// unique to the implementing type; the qualified type name is a good
// choice.
func KindHash(kind string, parts ...uint64) uint64 {
	return hash64(hashValue(kind), parts...)
}
