package charset

// runeMask is a bitmap over 256-codepoint blocks. Only blocks holding at
// least one codepoint are allocated.
type runeMask struct {
	blocks map[int32]*[4]uint64
}

func buildMask(rs []rune) runeMask {
	m := runeMask{blocks: make(map[int32]*[4]uint64)}
	for _, r := range rs {
		b := m.blocks[r>>8]
		if b == nil {
			b = new([4]uint64)
			m.blocks[r>>8] = b
		}
		lo := r & 0xff
		b[lo>>6] |= 1 << (lo & 63)
	}
	return m
}

func (m runeMask) has(r rune) bool {
	if r < 0 {
		return false
	}
	b := m.blocks[r>>8]
	if b == nil {
		return false
	}
	lo := r & 0xff
	return b[lo>>6]&(1<<(lo&63)) != 0
}
