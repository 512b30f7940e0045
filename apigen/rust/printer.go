package rust

import (
	"bytes"
	"strings"

	"github.com/ggriffiniii/google-apis/apigen/naming"
)

const indentUnit = "    "

// Printer renders item trees as Rust source text.
type Printer struct {
	buf   bytes.Buffer
	depth int
}

// Print renders a single item.
func Print(it Item) string {
	var p Printer
	p.Item(it)
	return p.String()
}

// PrintFile renders items as the contents of a source file, separated by
// blank lines and terminated by a newline.
func PrintFile(header []string, items []Item) string {
	var p Printer
	for _, h := range header {
		p.line(h)
	}
	if len(header) > 0 && len(items) > 0 {
		p.buf.WriteByte('\n')
	}
	p.items(items)
	return p.String()
}

// String returns the rendered text.
func (p *Printer) String() string {
	return p.buf.String()
}

// Item renders it at the current depth.
func (p *Printer) Item(it Item) {
	switch it := it.(type) {
	case *Module:
		p.module(it)
	case *Struct:
		p.structDecl(it)
	case *Enum:
		p.enumDecl(it)
	case *Impl:
		p.impl(it)
	}
}

func (p *Printer) items(items []Item) {
	for i, it := range items {
		if i > 0 {
			p.buf.WriteByte('\n')
		}
		p.Item(it)
	}
}

func (p *Printer) module(m *Module) {
	p.doc(m.Doc)
	if len(m.Items) == 0 {
		p.line("pub mod " + m.Name + " {}")
		return
	}
	p.line("pub mod " + m.Name + " {")
	p.depth++
	p.items(m.Items)
	p.depth--
	p.line("}")
}

func (p *Printer) structDecl(s *Struct) {
	p.doc(s.Doc)
	p.derives(s.Derives)
	for _, a := range s.Attrs {
		p.line(a)
	}
	head := "pub struct " + s.Name + generics(s.Lifetime)
	if len(s.Fields) == 0 {
		p.line(head + " {}")
		return
	}
	p.line(head + " {")
	p.depth++
	for _, f := range s.Fields {
		p.doc(f.Doc)
		for _, a := range f.Attrs {
			p.line(a)
		}
		vis := ""
		if f.Vis != "" {
			vis = f.Vis + " "
		}
		p.line(vis + f.Name + ": " + f.Type + ",")
	}
	p.depth--
	p.line("}")
}

func (p *Printer) enumDecl(e *Enum) {
	p.doc(e.Doc)
	p.derives(e.Derives)
	if len(e.Variants) == 0 {
		p.line("pub enum " + e.Name + " {}")
		return
	}
	p.line("pub enum " + e.Name + " {")
	p.depth++
	for _, v := range e.Variants {
		p.doc(v.Doc)
		for _, a := range v.Attrs {
			p.line(a)
		}
		p.line(v.Name + ",")
	}
	p.depth--
	p.line("}")
}

func (p *Printer) impl(impl *Impl) {
	head := "impl" + generics(impl.Lifetime) + " " + impl.Type + generics(impl.Lifetime)
	if len(impl.Consts) == 0 && len(impl.Fns) == 0 {
		p.line(head + " {}")
		return
	}
	p.line(head + " {")
	p.depth++
	for i, c := range impl.Consts {
		if i > 0 {
			p.buf.WriteByte('\n')
		}
		p.doc(c.Doc)
		p.line("pub const " + c.Name + ": " + c.Type + " = " + c.Value + ";")
	}
	for i, fn := range impl.Fns {
		if i > 0 || len(impl.Consts) > 0 {
			p.buf.WriteByte('\n')
		}
		p.fn(&fn)
	}
	p.depth--
	p.line("}")
}

func (p *Printer) fn(fn *Fn) {
	p.doc(fn.Doc)
	var args []string
	if fn.Receiver != "" {
		args = append(args, fn.Receiver)
	}
	for _, a := range fn.Args {
		args = append(args, a.Name+": "+a.Type)
	}
	sig := "pub fn " + fn.Name + "(" + strings.Join(args, ", ") + ")"
	if fn.Returns != "" {
		sig += " -> " + fn.Returns
	}
	if len(fn.Body) == 0 {
		p.line(sig + " {}")
		return
	}
	p.line(sig + " {")
	p.depth++
	for _, st := range fn.Body {
		p.stmt(st)
	}
	p.depth--
	p.line("}")
}

func (p *Printer) stmt(st Stmt) {
	switch st := st.(type) {
	case *StructLit:
		if len(st.Fields) == 0 {
			p.line(st.Type + " {}")
			return
		}
		p.line(st.Type + " {")
		p.depth++
		for _, f := range st.Fields {
			if f.Expr == "" || f.Expr == f.Name {
				p.line(f.Name + ",")
			} else {
				p.line(f.Name + ": " + f.Expr + ",")
			}
		}
		p.depth--
		p.line("}")
	case Line:
		p.line(string(st))
	}
}

func (p *Printer) derives(derives []string) {
	if len(derives) == 0 {
		return
	}
	p.line("#[derive(" + strings.Join(derives, ", ") + ")]")
}

func (p *Printer) doc(text string) {
	for _, l := range naming.DocLines(text) {
		if l == "" {
			p.line("///")
		} else {
			p.line("/// " + l)
		}
	}
}

func (p *Printer) line(s string) {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(indentUnit)
	}
	p.buf.WriteString(s)
	p.buf.WriteByte('\n')
}

func generics(lifetime string) string {
	if lifetime == "" {
		return ""
	}
	return "<" + lifetime + ">"
}
