package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board buffers between generations
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, sized to dims with every cell dead
func (p *BoardPool) Get(dims Dimensions) *Board {
	b := p.pool.Get().(*Board)
	b.reset(dims)
	return b
}

// Put hands a board back to the pool. The caller must not use it afterwards.
func (p *BoardPool) Put(b *Board) {
	p.pool.Put(b)
}
