package vecindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
)

// Index is an exact inner-product index over a fixed-dimension vector set.
// Vectors are held in memory as parallel id/vector slices; for a few hundred
// knowledge chunks a brute-force scan beats any ANN structure.
type Index struct {
	dim  int
	ids  []int64
	vecs [][]float32
}

// Entry pairs a document id with its embedding at build time.
type Entry struct {
	ID     int64
	Vector []float32
}

// Match is a single search hit.
type Match struct {
	ID    int64
	Score float32
}

func New(dim int) *Index {
	return &Index{dim: dim}
}

func Build(dim int, entries []Entry) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("index dimension must be positive, got %d", dim)
	}
	idx := New(dim)
	for _, ent := range entries {
		if err := idx.Add(ent.ID, ent.Vector); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (idx *Index) Dim() int {
	return idx.dim
}

func (idx *Index) Len() int {
	return len(idx.ids)
}

// MaxID reports the largest document id in the index, 0 when empty. The
// freshness job compares it with the database to detect stale indexes.
func (idx *Index) MaxID() int64 {
	var max int64
	for _, id := range idx.ids {
		if id > max {
			max = id
		}
	}
	return max
}

func (idx *Index) Add(id int64, vec []float32) error {
	if len(vec) != idx.dim {
		return fmt.Errorf("vector dimension %d does not match index dimension %d", len(vec), idx.dim)
	}
	stored := make([]float32, idx.dim)
	copy(stored, vec)
	idx.ids = append(idx.ids, id)
	idx.vecs = append(idx.vecs, stored)
	return nil
}

// FitDim reconciles a query vector with the index dimension: longer vectors
// are truncated, shorter ones zero-padded. Embedding model swaps then degrade
// retrieval quality instead of breaking search outright.
func (idx *Index) FitDim(vec []float32) []float32 {
	if len(vec) == idx.dim {
		return vec
	}
	fitted := make([]float32, idx.dim)
	copy(fitted, vec)
	return fitted
}

// Search returns the topK entries by inner product, highest first. Ties are
// broken by insertion order so results are stable across runs.
func (idx *Index) Search(query []float32, topK int) []Match {
	if topK <= 0 || len(idx.ids) == 0 {
		return nil
	}
	query = idx.FitDim(query)
	matches := make([]Match, 0, len(idx.ids))
	for i, vec := range idx.vecs {
		matches = append(matches, Match{ID: idx.ids[i], Score: dot(query, vec)})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Binary layout, all little-endian:
//
//	uint32 dim
//	uint32 count
//	count * int64  ids
//	count * dim * float32 vectors
func (idx *Index) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, uint32(idx.dim)); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(len(idx.ids))); err != nil {
		return nil, err
	}
	if err := binary.Write(buf, binary.LittleEndian, idx.ids); err != nil {
		return nil, err
	}
	for _, vec := range idx.vecs {
		if err := binary.Write(buf, binary.LittleEndian, vec); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (idx *Index) UnmarshalBinary(data []byte) error {
	rd := bytes.NewReader(data)
	var dim, count uint32
	if err := binary.Read(rd, binary.LittleEndian, &dim); err != nil {
		return fmt.Errorf("read index header: %w", err)
	}
	if err := binary.Read(rd, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("read index header: %w", err)
	}
	if dim == 0 {
		return fmt.Errorf("index header has zero dimension")
	}
	ids := make([]int64, count)
	if err := binary.Read(rd, binary.LittleEndian, ids); err != nil {
		return fmt.Errorf("read index ids: %w", err)
	}
	vecs := make([][]float32, count)
	for i := range vecs {
		vec := make([]float32, dim)
		if err := binary.Read(rd, binary.LittleEndian, vec); err != nil {
			return fmt.Errorf("read index vector %d: %w", i, err)
		}
		vecs[i] = vec
	}
	idx.dim = int(dim)
	idx.ids = ids
	idx.vecs = vecs
	return nil
}

func (idx *Index) Save(path string) error {
	data, err := idx.MarshalBinary()
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	idx := &Index{}
	if err := idx.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return idx, nil
}
