package component

type Kind uint8

const (
	KindText Kind = iota + 1
	KindTranslatable
	KindScore
	KindSelector
	KindKeybind
	KindNBT
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTranslatable:
		return "translatable"
	case KindScore:
		return "score"
	case KindSelector:
		return "selector"
	case KindKeybind:
		return "keybind"
	case KindNBT:
		return "nbt"
	default:
		return "unknown"
	}
}

// Component is a node of a chat component tree. The set of implementations is
// closed: *Text, *Translatable, *Score, *Selector, *Keybind and *NBT.
type Component interface {
	Kind() Kind
	Base() *Style
	sealed()
}

var (
	_ Component = (*Text)(nil)
	_ Component = (*Translatable)(nil)
	_ Component = (*Score)(nil)
	_ Component = (*Selector)(nil)
	_ Component = (*Keybind)(nil)
	_ Component = (*NBT)(nil)
)

type Text struct {
	Content string
	Style
}

func NewText(content string) *Text {
	return &Text{Content: content}
}

func (*Text) Kind() Kind { return KindText }
func (*Text) sealed()    {}

func (t *Text) String() string { return Plain(t) }

// Translatable is rendered client side from the translation Key, with the
// With components substituted for its placeholders. Fallback is shown when
// the client does not know the key.
type Translatable struct {
	Key      string
	With     []Component
	Fallback *string
	Style
}

func NewTranslatable(key string, with ...Component) *Translatable {
	t := &Translatable{Key: key}
	for _, c := range with {
		if c != nil {
			t.With = append(t.With, c)
		}
	}
	return t
}

func (*Translatable) Kind() Kind { return KindTranslatable }
func (*Translatable) sealed()    {}

func (t *Translatable) SetFallback(fallback string) {
	t.Fallback = &fallback
}

func (t *Translatable) String() string { return Plain(t) }

// Score references the value of Objective for the score holder Name. Value,
// when not empty, is the already resolved score.
type Score struct {
	Name      string
	Objective string
	Value     string
	Style
}

func NewScore(name, objective string) *Score {
	return &Score{Name: name, Objective: objective}
}

func (*Score) Kind() Kind { return KindScore }
func (*Score) sealed()    {}

func (s *Score) String() string { return Plain(s) }

type Selector struct {
	Pattern   string
	Separator Component
	Style
}

func NewSelector(pattern string) *Selector {
	return &Selector{Pattern: pattern}
}

func (*Selector) Kind() Kind { return KindSelector }
func (*Selector) sealed()    {}

func (s *Selector) String() string { return Plain(s) }

type Keybind struct {
	ID string
	Style
}

func NewKeybind(id string) *Keybind {
	return &Keybind{ID: id}
}

func (*Keybind) Kind() Kind { return KindKeybind }
func (*Keybind) sealed()    {}

func (k *Keybind) String() string { return Plain(k) }

type NBTSourceKind string

const (
	BlockSource   NBTSourceKind = "block"
	EntitySource  NBTSourceKind = "entity"
	StorageSource NBTSourceKind = "storage"
)

// NBTSource names where NBT data is read from: block coordinates, an entity
// selector or a storage identifier, depending on Kind.
type NBTSource struct {
	Kind   NBTSourceKind
	Target string
}

type NBT struct {
	Path      string
	Source    NBTSource
	Interpret Tristate
	Separator Component
	Style
}

func NewNBT(path string, source NBTSource) *NBT {
	return &NBT{Path: path, Source: source}
}

func NewBlockNBT(path, position string) *NBT {
	return NewNBT(path, NBTSource{Kind: BlockSource, Target: position})
}

func NewEntityNBT(path, selector string) *NBT {
	return NewNBT(path, NBTSource{Kind: EntitySource, Target: selector})
}

func NewStorageNBT(path, storage string) *NBT {
	return NewNBT(path, NBTSource{Kind: StorageSource, Target: storage})
}

func (*NBT) Kind() Kind { return KindNBT }
func (*NBT) sealed()    {}

func (n *NBT) String() string { return Plain(n) }
