package slices

// Chunk splits slice into chunks of chunkSize elements, the last one may be shorter.
// Non-positive chunkSize gives a single chunk holding the whole slice.
// Chunks share memory with the original slice.
func Chunk[T any](slice []T, chunkSize int) [][]T {
	if chunkSize <= 0 {
		return [][]T{slice}
	}
	chunks := make([][]T, 0, (len(slice)+chunkSize-1)/chunkSize)
	for chunkSize < len(slice) {
		chunks = append(chunks, slice[:chunkSize:chunkSize])
		slice = slice[chunkSize:]
	}
	if len(slice) > 0 {
		chunks = append(chunks, slice)
	}
	return chunks
}
