package pairwise

// Block is a contiguous range of row indices [Start, End) processed by one task.
type Block struct {
	Index int // position of the block in the partition
	Start int
	End   int
}

// Len returns the number of rows in the block.
func (b Block) Len() int { return b.End - b.Start }

// BlockCount returns how many blocks of width chunk cover rows rows.
func BlockCount(rows, chunk int) int {
	if rows <= 0 || chunk <= 0 {
		return 0
	}
	return (rows + chunk - 1) / chunk
}

// Blocks partitions [0, rows) into blocks of width chunk. The last block is
// shorter when chunk does not divide rows. No empty block is produced.
func Blocks(rows, chunk int) []Block {
	blocks := make([]Block, 0, BlockCount(rows, chunk))
	for start := 0; start < rows && chunk > 0; start += chunk {
		blocks = append(blocks, Block{
			Index: len(blocks),
			Start: start,
			End:   min(start+chunk, rows),
		})
	}
	return blocks
}
