package vocabulary

import "github.com/c360/semterms/term"

// arena is an append-only value store with a reverse map. Positions
// are never reused or invalidated, so an index stays resolvable for
// the lifetime of the arena.
type arena[T comparable] struct {
	values  []T
	reverse map[T]uint64
}

// intern returns the position of v, appending it first if absent.
// The second result reports whether v was already present.
func (a *arena[T]) intern(v T) (uint64, bool) {
	if pos, ok := a.reverse[v]; ok {
		return pos, true
	}
	if a.reverse == nil {
		a.reverse = make(map[T]uint64)
	}
	pos := uint64(len(a.values))
	a.values = append(a.values, v)
	a.reverse[v] = pos
	return pos, false
}

// lookup returns the position of v without interning it.
func (a *arena[T]) lookup(v T) (uint64, bool) {
	pos, ok := a.reverse[v]
	return pos, ok
}

// get resolves a position back to its value.
func (a *arena[T]) get(pos uint64) (T, bool) {
	if pos >= uint64(len(a.values)) {
		var zero T
		return zero, false
	}
	return a.values[pos], true
}

// len returns the number of stored values.
func (a *arena[T]) len() int {
	return len(a.values)
}

// IndexVocabulary interns IRIs, blank nodes, and literals into three
// independent arenas. It implements VocabularyMut. Not safe for
// concurrent use.
type IndexVocabulary struct {
	iris     arena[term.IRI]
	blanks   arena[term.BlankID]
	literals arena[Literal]

	wellKnownIRIs   map[term.IRI]struct{}
	wellKnownBlanks map[term.BlankID]struct{}

	stats   *Statistics
	metrics *vocabularyMetrics
}

// Option configures an IndexVocabulary.
type Option func(*IndexVocabulary)

// WithWellKnownIRIs registers IRIs that intern inline, bypassing the
// arena. Register the same set on every vocabulary that needs to
// agree on their indexes.
func WithWellKnownIRIs(iris ...term.IRI) Option {
	return func(v *IndexVocabulary) {
		for _, iri := range iris {
			v.wellKnownIRIs[iri] = struct{}{}
		}
	}
}

// WithWellKnownBlanks registers blank nodes that intern inline.
func WithWellKnownBlanks(blanks ...term.BlankID) Option {
	return func(v *IndexVocabulary) {
		for _, blank := range blanks {
			v.wellKnownBlanks[blank] = struct{}{}
		}
	}
}

// New creates an empty IndexVocabulary.
func New(options ...Option) *IndexVocabulary {
	v := &IndexVocabulary{
		wellKnownIRIs:   make(map[term.IRI]struct{}),
		wellKnownBlanks: make(map[term.BlankID]struct{}),
		stats:           NewStatistics(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Stats returns the always-on statistics tracker.
func (v *IndexVocabulary) Stats() *Statistics {
	return v.stats
}

// InsertIRI interns an IRI. Well-known IRIs classify inline without
// touching the arena.
func (v *IndexVocabulary) InsertIRI(iri term.IRI) IriIndex {
	if _, ok := v.wellKnownIRIs[iri]; ok {
		v.stats.Hit()
		v.stats.InlineHit()
		v.metrics.hit()
		v.metrics.inlineHit()
		return InlineIRI(iri)
	}
	pos, existed := v.iris.intern(iri)
	v.recordIntern(existed)
	return IndexedIRI(pos)
}

// GetIRI looks up an IRI without interning it.
func (v *IndexVocabulary) GetIRI(iri term.IRI) (IriIndex, bool) {
	if _, ok := v.wellKnownIRIs[iri]; ok {
		return InlineIRI(iri), true
	}
	pos, ok := v.iris.lookup(iri)
	if !ok {
		return IriIndex{}, false
	}
	return IndexedIRI(pos), true
}

// IRI resolves an IRI index back to its lexical form.
func (v *IndexVocabulary) IRI(i IriIndex) (term.IRI, bool) {
	if iri, ok := i.AsInline(); ok {
		_, known := v.wellKnownIRIs[iri]
		return iri, known
	}
	pos, _ := i.AsPosition()
	return v.iris.get(pos)
}

// InsertBlank interns a blank node. Well-known blank nodes classify
// inline without touching the arena.
func (v *IndexVocabulary) InsertBlank(blank term.BlankID) BlankIndex {
	if _, ok := v.wellKnownBlanks[blank]; ok {
		v.stats.Hit()
		v.stats.InlineHit()
		v.metrics.hit()
		v.metrics.inlineHit()
		return InlineBlank(blank)
	}
	pos, existed := v.blanks.intern(blank)
	v.recordIntern(existed)
	return IndexedBlank(pos)
}

// GetBlank looks up a blank node without interning it.
func (v *IndexVocabulary) GetBlank(blank term.BlankID) (BlankIndex, bool) {
	if _, ok := v.wellKnownBlanks[blank]; ok {
		return InlineBlank(blank), true
	}
	pos, ok := v.blanks.lookup(blank)
	if !ok {
		return BlankIndex{}, false
	}
	return IndexedBlank(pos), true
}

// Blank resolves a blank node index back to its lexical form.
func (v *IndexVocabulary) Blank(b BlankIndex) (term.BlankID, bool) {
	if blank, ok := b.AsInline(); ok {
		_, known := v.wellKnownBlanks[blank]
		return blank, known
	}
	pos, _ := b.AsPosition()
	return v.blanks.get(pos)
}

// InsertLiteral interns a literal whose datatype is already an index.
func (v *IndexVocabulary) InsertLiteral(lit Literal) LiteralIndex {
	pos, existed := v.literals.intern(lit)
	v.recordIntern(existed)
	return LiteralIndex(pos)
}

// GetLiteral looks up a literal without interning it.
func (v *IndexVocabulary) GetLiteral(lit Literal) (LiteralIndex, bool) {
	pos, ok := v.literals.lookup(lit)
	return LiteralIndex(pos), ok
}

// Literal resolves a literal index. The returned literal still
// carries its datatype as an IriIndex.
func (v *IndexVocabulary) Literal(l LiteralIndex) (Literal, bool) {
	return v.literals.get(uint64(l))
}

// Len returns the arena sizes: interned IRIs, blank nodes, and
// literals. Inline classifications are not counted.
func (v *IndexVocabulary) Len() (iris, blanks, literals int) {
	return v.iris.len(), v.blanks.len(), v.literals.len()
}

func (v *IndexVocabulary) recordIntern(existed bool) {
	if existed {
		v.stats.Hit()
		v.metrics.hit()
		return
	}
	v.stats.Miss()
	v.metrics.miss()
	iris, blanks, literals := v.Len()
	v.stats.UpdateSizes(iris, blanks, literals)
	v.metrics.updateSizes(iris, blanks, literals)
}

var (
	_ VocabularyMut = (*IndexVocabulary)(nil)
	_ Vocabulary    = (*IndexVocabulary)(nil)
)
