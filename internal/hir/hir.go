package hir

// Resolved view of one expanded contract module. The contract build emits
// this tree after macro expansion and name resolution; the lint layer only
// reads it.

// ItemID references a top-level declaration within one Context. IDs are
// opaque: equality is the only meaningful operation.
type ItemID uint32

// DefID identifies the resolved declaration a path points at. Zero means the
// path did not resolve.
type DefID uint32

type ItemKind int

const (
	KindStruct ItemKind = iota
	KindEnum
	KindConst
	KindImpl
	KindFn
)

// Item is one top-level declaration. Kind selects which payload pointer is
// populated; the others stay nil.
type Item struct {
	ID    ItemID   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Kind  ItemKind `json:"kind"`
	Attrs []string `json:"attrs,omitempty"`
	Span  Span     `json:"span"`

	Const *ConstItem `json:"const,omitempty"`
	Impl  *ImplItem  `json:"impl,omitempty"`
	Fn    *FnItem    `json:"fn,omitempty"`
}

// Span locates an item in the pre-expansion source for reporting.
type Span struct {
	File      string `json:"file,omitempty"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
}

type TypeKind int

const (
	// TypePath is a path reference like `Erc20` or `crate::Erc20`; Res holds
	// the declaration it resolved to.
	TypePath TypeKind = iota
	// TypeTuple covers tuple types; an empty Elems list is the unit type.
	TypeTuple
)

type Type struct {
	Kind  TypeKind `json:"kind"`
	Path  string   `json:"path,omitempty"`
	Res   DefID    `json:"res,omitempty"`
	Elems []*Type  `json:"elems,omitempty"`
}

// IsUnit reports whether the type is the empty tuple `()`.
func (t *Type) IsUnit() bool {
	return t != nil && t.Kind == TypeTuple && len(t.Elems) == 0
}

// ConstItem is a constant declaration: its declared type and initializer.
type ConstItem struct {
	Ty   *Type `json:"ty"`
	Body *Expr `json:"body"`
}

// TraitRef names the trait an impl block implements, by fully-qualified path.
type TraitRef struct {
	Path string `json:"path"`
	Res  DefID  `json:"res,omitempty"`
}

// ImplItem is an impl block. Trait is nil for inherent impls.
type ImplItem struct {
	SelfTy *Type     `json:"selfTy"`
	Trait  *TraitRef `json:"trait,omitempty"`
	Fns    []ItemID  `json:"fns,omitempty"`
}

type FnItem struct {
	Public bool `json:"public,omitempty"`
}

type ExprKind int

const (
	ExprBlock ExprKind = iota
	ExprOther
)

// Expr models initializer bodies with just enough shape to recognize the
// block form used by generated unnamed consts.
type Expr struct {
	Kind  ExprKind `json:"kind"`
	Block *Block   `json:"block,omitempty"`
}

type Block struct {
	Stmts []Stmt `json:"stmts,omitempty"`
}

type StmtKind int

const (
	StmtItem StmtKind = iota
	StmtExpr
	StmtLocal
)

// Stmt is a statement inside a block; only item statements carry an ItemID.
type Stmt struct {
	Kind StmtKind `json:"kind"`
	Item ItemID   `json:"item,omitempty"`
}

// Context is the read-only query surface over one expanded module. The lint
// layer borrows it for the duration of each call and never mutates it.
type Context struct {
	module   string
	source   string
	topLevel []ItemID
	items    map[ItemID]*Item
}

// NewContext builds a query context from a module's declarations. TopLevel
// lists the ids declared at module scope; items inside unnamed consts appear
// in items but not in topLevel.
func NewContext(module, source string, topLevel []ItemID, items []*Item) *Context {
	m := make(map[ItemID]*Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &Context{module: module, source: source, topLevel: topLevel, items: m}
}

func (c *Context) Module() string { return c.module }

// Source returns the path of the pre-expansion source file, if known.
func (c *Context) Source() string { return c.source }

// TopLevel returns the ids of the module's top-level items in source order.
// Callers must not modify the returned slice.
func (c *Context) TopLevel() []ItemID { return c.topLevel }

// Item resolves an id to its declaration, or nil for an unknown id.
func (c *Context) Item(id ItemID) *Item { return c.items[id] }

// Attrs returns the raw attribute texts attached to an item.
func (c *Context) Attrs(id ItemID) []string {
	if it := c.items[id]; it != nil {
		return it.Attrs
	}
	return nil
}
