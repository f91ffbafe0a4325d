package game

// --- Spatial Hash Grid for Target Lookup ---

// Collidable is an interface for objects that can participate in spatial hashing.
type Collidable interface {
	GetPosition() (x, y float64)
}

// SpatialGrid is a grid-based spatial hash. Auto-aim bullets query it for
// enemies in their neighbourhood instead of scanning every enemy.
type SpatialGrid struct {
	CellSize   float64
	GridWidth  int
	GridHeight int
	Cells      [][]Collidable
}

// NewSpatialGrid creates a new spatial grid for the given world dimensions.
// A 3x3 query covers every object within cellSize of the query point, so
// cellSize should be at least the largest search radius.
func NewSpatialGrid(worldWidth, worldHeight, cellSize float64) *SpatialGrid {
	gridWidth := int(worldWidth/cellSize) + 1
	gridHeight := int(worldHeight/cellSize) + 1

	cells := make([][]Collidable, gridWidth*gridHeight)
	for i := range cells {
		cells[i] = make([]Collidable, 0, 4)
	}

	return &SpatialGrid{
		CellSize:   cellSize,
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Cells:      cells,
	}
}

// cell returns the clamped cell coordinates of a position.
func (sg *SpatialGrid) cell(x, y float64) (int, int) {
	cx := int(x / sg.CellSize)
	cy := int(y / sg.CellSize)
	if x < 0 {
		cx = 0
	}
	if y < 0 {
		cy = 0
	}
	if cx >= sg.GridWidth {
		cx = sg.GridWidth - 1
	}
	if cy >= sg.GridHeight {
		cy = sg.GridHeight - 1
	}
	return cx, cy
}

// Clear removes all objects from the grid. Call at the start of each tick.
func (sg *SpatialGrid) Clear() {
	for i := range sg.Cells {
		sg.Cells[i] = sg.Cells[i][:0]
	}
}

// Insert adds an object to the grid at its current position.
func (sg *SpatialGrid) Insert(obj Collidable) {
	cx, cy := sg.cell(obj.GetPosition())
	idx := cy*sg.GridWidth + cx
	sg.Cells[idx] = append(sg.Cells[idx], obj)
}

// Len counts the objects in the grid.
func (sg *SpatialGrid) Len() int {
	n := 0
	for _, c := range sg.Cells {
		n += len(c)
	}
	return n
}

// GetNearby returns all objects in the same cell and adjacent cells.
func (sg *SpatialGrid) GetNearby(x, y float64) []Collidable {
	cx, cy := sg.cell(x, y)

	var nearby []Collidable
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			ncx := cx + dx
			ncy := cy + dy
			if ncx < 0 || ncx >= sg.GridWidth || ncy < 0 || ncy >= sg.GridHeight {
				continue
			}
			nearby = append(nearby, sg.Cells[ncy*sg.GridWidth+ncx]...)
		}
	}
	return nearby
}

// --- Particle Pool ---

// ParticlePool manages reusable particle objects. The pool size is the hard
// particle cap: once full, new particles are dropped.
type ParticlePool struct {
	Pool        []*Particle
	ActiveCount int
	MaxSize     int
	Dropped     int
}

// NewParticlePool creates a new particle pool with pre-allocated objects.
func NewParticlePool(maxSize int) *ParticlePool {
	pool := &ParticlePool{
		Pool:    make([]*Particle, maxSize),
		MaxSize: maxSize,
	}
	for i := 0; i < maxSize; i++ {
		pool.Pool[i] = &Particle{PoolIndex: i}
	}
	return pool
}

// Acquire gets an available particle from the pool, or nil when full.
func (p *ParticlePool) Acquire() *Particle {
	if p.ActiveCount >= p.MaxSize {
		p.Dropped++
		return nil
	}
	pt := p.Pool[p.ActiveCount]
	*pt = Particle{PoolIndex: p.ActiveCount}
	p.ActiveCount++
	return pt
}

// Release returns a particle to the pool using swap-and-pop.
func (p *ParticlePool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index], p.Pool[lastIndex] = p.Pool[lastIndex], p.Pool[index]
		p.Pool[index].PoolIndex = index
		p.Pool[lastIndex].PoolIndex = lastIndex
	}
	p.ActiveCount--
}

// ForEachReverse iterates active particles backwards so fn may release the
// current one.
func (p *ParticlePool) ForEachReverse(fn func(pt *Particle, index int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Active returns the live particles. The slice aliases the pool.
func (p *ParticlePool) Active() []*Particle {
	return p.Pool[:p.ActiveCount]
}
