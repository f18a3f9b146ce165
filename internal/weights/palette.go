package weights

// Kind selects one of the two weight sets the shell cycles through.
type Kind int

const (
	Small Kind = iota
	Big
)

func (k Kind) String() string {
	if k == Big {
		return "big"
	}
	return "small"
}

var (
	SmallMasses = []float64{0.5, 1, 1.5, 2, 2.5}
	BigMasses   = []float64{3, 5, 7, 11, 16}
)

// Palette is the currently selected weight size.
type Palette struct {
	kind  Kind
	index int
}

func NewPalette() *Palette {
	return &Palette{}
}

func (p *Palette) Kind() Kind { return p.kind }
func (p *Palette) Index() int { return p.index }

func (p *Palette) Masses() []float64 {
	if p.kind == Big {
		return BigMasses
	}
	return SmallMasses
}

func (p *Palette) Mass() float64 {
	return p.Masses()[p.index]
}

func (p *Palette) SetKind(k Kind) {
	if k != Big {
		k = Small
	}
	p.kind = k
	if n := len(p.Masses()); p.index >= n {
		p.index = n - 1
	}
}

func (p *Palette) Next() {
	p.index = (p.index + 1) % len(p.Masses())
}

func (p *Palette) Prev() {
	n := len(p.Masses())
	p.index = (p.index - 1 + n) % n
}

// Select picks the i-th size; out of range indices are ignored.
func (p *Palette) Select(i int) bool {
	if i < 0 || i >= len(p.Masses()) {
		return false
	}
	p.index = i
	return true
}
