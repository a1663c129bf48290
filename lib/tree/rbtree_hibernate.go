package tree

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pierrec/lz4/v4"

	"github.com/benz9527/xcoll/lib/infra"
)

// Tree hibernation: an integer-keyed tree snapshot is de-interleaved into
// per-field uint64 buffers, delta-encoded where the data is sorted, and
// LZ4-compressed. The snapshot is inert data; waking always materializes a
// fresh exclusive tree.

const uint64ByteSize = 8

const (
	hibKeys = iota
	hibVals
	hibLefts
	hibRights
	hibParents
	hibColors
	hibBufferCount
)

// hibernatedBuffer falls back to the raw bytes when a buffer does not
// shrink under LZ4 (e.g. random payloads).
type hibernatedBuffer struct {
	data []byte
	raw  bool
}

// HibernatedRBTree is a compressed, detached snapshot of a tree.
type HibernatedRBTree struct {
	buffers [hibBufferCount]hibernatedBuffer
	count   int
	rootIdx uint64
}

// Len returns the number of entries in the snapshot.
func (h *HibernatedRBTree) Len() int {
	return h.count
}

// CompressUInt64Slice compresses a slice of uint64-s with LZ4. The second
// result is false when the input is incompressible and returned verbatim.
func CompressUInt64Slice(data []uint64) ([]byte, bool, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return nil, false, infra.WrapErrorStack(err, "[rbtree] hibernate encode")
	}

	compressed := make([]byte, lz4.CompressBlockBound(buf.Len()))
	written, err := lz4.CompressBlock(buf.Bytes(), compressed, nil)
	if err != nil {
		return nil, false, infra.WrapErrorStack(err, "[rbtree] hibernate compress")
	}
	if written == 0 || written >= buf.Len() {
		return buf.Bytes(), false, nil
	}
	return compressed[:written], true, nil
}

// DecompressUInt64Slice decompresses a buffer previously produced by
// CompressUInt64Slice. `result` must be preallocated to the entry count.
func DecompressUInt64Slice(data []byte, compressed bool, result []uint64) error {
	decompressed := data
	if compressed {
		decompressed = make([]byte, len(result)*uint64ByteSize)
		if _, err := lz4.UncompressBlock(data, decompressed); err != nil {
			return infra.WrapErrorStack(err, "[rbtree] hibernate decompress")
		}
	}
	if err := binary.Read(bytes.NewReader(decompressed), binary.LittleEndian, result); err != nil {
		return infra.WrapErrorStack(err, "[rbtree] hibernate decode")
	}
	return nil
}

// DeltaEncodeUInt64Slice replaces each element with the difference from
// its predecessor, in place. Sorted sequences become small repetitive
// values that compress far better with LZ4.
func DeltaEncodeUInt64Slice(data []uint64) {
	for i := len(data) - 1; i > 0; i-- {
		data[i] -= data[i-1]
	}
}

// DeltaDecodeUInt64Slice performs a prefix-sum to restore the original
// values, in place.
func DeltaDecodeUInt64Slice(data []uint64) {
	for i := 1; i < len(data); i++ {
		data[i] += data[i-1]
	}
}

// HibernateRBTree snapshots an integer-keyed, integer-valued tree.
// Nodes are numbered in key order, so the key buffer is sorted and
// delta-encoding pays off. Child/parent references are stored as
// index+1 with 0 as the nil slot.
func HibernateRBTree[K, V infra.Integer](t COWRBTree[K, V]) (*HibernatedRBTree, error) {
	tree, ok := t.(*cowRBTree[K, V])
	if !ok {
		return nil, infra.NewErrorStack("[rbtree] hibernate of a foreign tree implementation")
	}

	count := int(tree.Len())
	h := &HibernatedRBTree{count: count}
	if count == 0 {
		return h, nil
	}

	nodes := make([]*rbNode[K, V], 0, count)
	for aux := tree.core.min; aux != nil; aux = aux.succ() {
		nodes = append(nodes, aux)
	}
	ordinals := make(map[*rbNode[K, V]]uint64, count)
	for i, nd := range nodes {
		ordinals[nd] = uint64(i)
	}

	// We deinterleave to achieve a better compression ratio.
	buffers := [hibBufferCount][]uint64{}
	for idx := range buffers {
		buffers[idx] = make([]uint64, count)
	}
	ref := func(nd *rbNode[K, V]) uint64 {
		if nd == nil {
			return 0
		}
		return ordinals[nd] + 1
	}
	for i, nd := range nodes {
		buffers[hibKeys][i] = uint64(nd.key)
		buffers[hibVals][i] = uint64(nd.val)
		buffers[hibLefts][i] = ref(nd.left)
		buffers[hibRights][i] = ref(nd.right)
		buffers[hibParents][i] = ref(nd.parent)
		if nd.color == Red {
			buffers[hibColors][i] = 1
		}
	}
	h.rootIdx = ordinals[tree.core.root]
	DeltaEncodeUInt64Slice(buffers[hibKeys])

	wg := &sync.WaitGroup{}
	wg.Add(hibBufferCount)
	errs := [hibBufferCount]error{}
	for idx := range buffers {
		bufIdx := idx
		submitErr := ants.Submit(func() {
			defer wg.Done()
			data, packed, err := CompressUInt64Slice(buffers[bufIdx])
			if err != nil {
				errs[bufIdx] = err
				return
			}
			h.buffers[bufIdx] = hibernatedBuffer{data: data, raw: !packed}
			buffers[bufIdx] = nil
		})
		if submitErr != nil {
			wg.Done()
			errs[bufIdx] = infra.WrapErrorStack(submitErr, "[rbtree] hibernate submit")
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}

// AwakeRBTree materializes a fresh exclusive tree from a snapshot. The
// snapshot stays usable afterwards.
func AwakeRBTree[K, V infra.Integer](h *HibernatedRBTree) (COWRBTree[K, V], error) {
	tree := &cowRBTree[K, V]{
		core: &rbTreeCore[K, V]{
			gen:  nextGen(),
			refs: 1,
		},
	}
	if h.count == 0 {
		return tree, nil
	}

	buffers := [hibBufferCount][]uint64{}
	for idx := range buffers {
		buffers[idx] = make([]uint64, h.count)
		if err := DecompressUInt64Slice(h.buffers[idx].data, !h.buffers[idx].raw, buffers[idx]); err != nil {
			return nil, err
		}
	}
	DeltaDecodeUInt64Slice(buffers[hibKeys])

	nodes := make([]rbNode[K, V], h.count)
	deref := func(ref uint64) *rbNode[K, V] {
		if ref == 0 {
			return nil
		}
		return &nodes[ref-1]
	}
	for i := range nodes {
		nodes[i].key = K(buffers[hibKeys][i])
		nodes[i].val = V(buffers[hibVals][i])
		nodes[i].left = deref(buffers[hibLefts][i])
		nodes[i].right = deref(buffers[hibRights][i])
		nodes[i].parent = deref(buffers[hibParents][i])
		if buffers[hibColors][i] == 1 {
			nodes[i].color = Red
		}
	}

	core := tree.core
	core.root = &nodes[h.rootIdx]
	core.min = core.root.minimum()
	core.max = core.root.maximum()
	core.count = int64(h.count)
	return tree, nil
}
