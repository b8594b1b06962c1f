package render

import "sync"

// BufferPool recycles canvas pixel buffers between frames
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Canvas{}
			},
		},
	}
}

// Get retrieves a canvas from the pool, resetting its dimensions
func (p *BufferPool) Get(width, height, blockSize int) *Canvas {
	c := p.pool.Get().(*Canvas)
	c.Reset(width, height, blockSize)
	return c
}

// Put returns a canvas to the pool
func (p *BufferPool) Put(c *Canvas) {
	if p == nil || c == nil {
		return
	}
	p.pool.Put(c)
}
