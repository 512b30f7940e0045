package rust

// Item is a top-level Rust declaration inside a module.
type Item interface {
	isItem()
}

// Module is an inline module: `pub mod name { ... }`.
type Module struct {
	Name  string
	Doc   string
	Items []Item
}

// Struct is a struct declaration with named fields.
type Struct struct {
	Doc      string
	Name     string
	Lifetime string // e.g. "'a"; empty for no generic lifetime
	Derives  []string
	Attrs    []string
	Fields   []Field
}

// Field is a named struct field.
type Field struct {
	Doc   string
	Attrs []string
	Vis   string // "pub", "pub(crate)" or empty for private
	Name  string
	Type  string
}

// Enum is a fieldless enum declaration.
type Enum struct {
	Doc      string
	Name     string
	Derives  []string
	Variants []Variant
}

// Variant is one fieldless enum variant.
type Variant struct {
	Doc   string
	Attrs []string
	Name  string
}

// Impl is an inherent impl block.
type Impl struct {
	Lifetime string
	Type     string
	Consts   []Const
	Fns      []Fn
}

// Const is an associated constant.
type Const struct {
	Doc   string
	Name  string
	Type  string
	Value string
}

// Fn is a function or method definition.
type Fn struct {
	Doc      string
	Name     string
	Receiver string // "&self", "mut self"; empty for associated functions
	Args     []Arg
	Returns  string
	Body     []Stmt
}

// Arg is a function argument.
type Arg struct {
	Name string
	Type string
}

// Stmt is a statement or tail expression in a function body.
type Stmt interface {
	isStmt()
}

// StructLit is a struct literal expression.
type StructLit struct {
	Type   string
	Fields []FieldInit
}

// FieldInit initializes one field of a struct literal. An empty Expr uses
// field init shorthand.
type FieldInit struct {
	Name string
	Expr string
}

// Line is a verbatim statement or expression.
type Line string

func (*Module) isItem() {}
func (*Struct) isItem() {}
func (*Enum) isItem()   {}
func (*Impl) isItem()   {}

func (*StructLit) isStmt() {}
func (Line) isStmt()       {}

// FindModule returns the direct sub-module with the given name, or nil.
func (m *Module) FindModule(name string) *Module {
	for _, it := range m.Items {
		if sub, ok := it.(*Module); ok && sub.Name == name {
			return sub
		}
	}
	return nil
}

// FindStruct returns the struct with the given name declared directly in m, or nil.
func (m *Module) FindStruct(name string) *Struct {
	for _, it := range m.Items {
		if s, ok := it.(*Struct); ok && s.Name == name {
			return s
		}
	}
	return nil
}

// FindImpl returns the impl block for the given type declared directly in m, or nil.
func (m *Module) FindImpl(typ string) *Impl {
	for _, it := range m.Items {
		if impl, ok := it.(*Impl); ok && impl.Type == typ {
			return impl
		}
	}
	return nil
}

// Modules returns the direct sub-modules of m in declaration order.
func (m *Module) Modules() []*Module {
	var out []*Module
	for _, it := range m.Items {
		if sub, ok := it.(*Module); ok {
			out = append(out, sub)
		}
	}
	return out
}

// FindFn returns the function with the given name, or nil.
func (impl *Impl) FindFn(name string) *Fn {
	for i := range impl.Fns {
		if impl.Fns[i].Name == name {
			return &impl.Fns[i]
		}
	}
	return nil
}
