package engine

import "fmt"

// Chunk is a half-open range [Start, End) of line indices assigned to one worker.
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of lines in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// check reports an error if the chunk does not lie within [0, n).
func (c Chunk) check(n int) error {
	if c.Start < 0 || c.End < c.Start || c.End > n {
		return fmt.Errorf("chunk [%d,%d) outside [0,%d)", c.Start, c.End, n)
	}
	return nil
}

// ChunkSize returns ceil(n / workers), the number of lines each worker is
// assigned. It returns 0 when workers is not positive.
func ChunkSize(n, workers int) int {
	if workers <= 0 || n <= 0 {
		return 0
	}
	size := n / workers
	if n%workers != 0 {
		size++
	}
	return size
}

// Partition divides [0, n) into contiguous chunks of ChunkSize(n, workers)
// lines, one per worker that has work. Workers beyond the last non-empty
// chunk would be assigned empty ranges and are omitted, so at most
// min(workers, n) chunks are returned. Partition returns nil when workers is
// not positive.
func Partition(n, workers int) []Chunk {
	if workers <= 0 {
		return nil
	}
	if n < 0 {
		n = 0
	}

	size := ChunkSize(n, workers)
	chunks := make([]Chunk, activeChunks(n, size))
	for i := range chunks {
		chunks[i] = Chunk{
			Start: offset(i, size, n),
			End:   offset(i+1, size, n),
		}
	}
	return chunks
}

// activeChunks returns ceil(n / size), the number of non-empty chunks.
func activeChunks(n, size int) int {
	if size == 0 {
		return 0
	}
	count := n / size
	if n%size != 0 {
		count++
	}
	return count
}

// offset returns min(i*size, n) without computing i*size when it would
// exceed n.
func offset(i, size, n int) int {
	if size == 0 || i > n/size {
		return n
	}
	return i * size
}
