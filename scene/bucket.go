package scene

import "fmt"

// Bucket names a draw-order/material-handling group. Every mesh belongs to
// exactly one bucket; membership is fixed at scene-composition time.
type Bucket int

const (
	BucketOpaque Bucket = iota
	BucketNormalMapped
	BucketTransparent

	numBuckets
)

func (b Bucket) String() string {
	switch b {
	case BucketOpaque:
		return "opaque"
	case BucketNormalMapped:
		return "normal-mapped"
	case BucketTransparent:
		return "transparent"
	}
	return fmt.Sprintf("bucket(%d)", int(b))
}

// Classify decides bucket membership from material capability and the
// composer's blend intent: a mesh meant to blend goes transparent, a mesh
// with normal+specular maps and tangent data goes normal-mapped, everything
// else is opaque.
func Classify(m *Mesh, blend bool) Bucket {
	if blend {
		return BucketTransparent
	}
	if m.HasNormalMap {
		return BucketNormalMapped
	}
	return BucketOpaque
}

// Buckets holds the three ordered mesh lists consulted every frame.
// Iteration order within a bucket is insertion order.
type Buckets struct {
	lists [numBuckets][]*Mesh
}

// Add classifies the mesh and appends it to its bucket. Adding a mesh
// twice is a composition bug and returns an error.
func (bs *Buckets) Add(m *Mesh, blend bool) (Bucket, error) {
	if m.hasBucket {
		return m.bucket, fmt.Errorf("mesh %q already assigned to %s bucket", m.Name, m.bucket)
	}
	b := Classify(m, blend)
	m.bucket = b
	m.hasBucket = true
	bs.lists[b] = append(bs.lists[b], m)
	return b, nil
}

// Meshes returns the ordered mesh list of one bucket.
func (bs *Buckets) Meshes(b Bucket) []*Mesh {
	return bs.lists[b]
}

// All returns every bucketed mesh, in bucket order.
func (bs *Buckets) All() []*Mesh {
	var out []*Mesh
	for b := BucketOpaque; b < numBuckets; b++ {
		out = append(out, bs.lists[b]...)
	}
	return out
}

// Len reports the total mesh count across all buckets.
func (bs *Buckets) Len() int {
	n := 0
	for _, l := range bs.lists {
		n += len(l)
	}
	return n
}
