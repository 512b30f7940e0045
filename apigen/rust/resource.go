package rust

import (
	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

// scope is the read-only context passed down the resource tree.
type scope struct {
	rootURL      string
	servicePath  string
	globalParams []desc.Param

	// path holds the resource identifiers from the root to the current resource.
	path []string
}

func newScope(d *desc.ServiceDescription) scope {
	return scope{
		rootURL:      d.RootURL,
		servicePath:  d.ServicePath,
		globalParams: d.GlobalParams,
	}
}

// child returns the scope of a nested resource. The receiver is not modified.
func (sc scope) child(identifier string) scope {
	path := make([]string, len(sc.path), len(sc.path)+1)
	copy(path, sc.path)
	sc.path = append(path, identifier)
	return sc
}

func (sc scope) resourceLoc() desc.Location {
	var loc desc.Location
	for _, id := range sc.path {
		loc = loc.Child(id)
	}
	return loc
}

func (sc scope) methodLoc(methodID string) desc.Location {
	loc := sc.resourceLoc()
	loc.Method = methodID
	return loc
}

// generateResource emits the module for r and, recursively, its children.
//
// The module contains, in order: the parameter-types module, the action
// struct and its impl, a builder struct and impl per method, then one module
// per child resource.
func generateResource(sc scope, r *desc.Resource) (*Module, error) {
	sc = sc.child(r.Identifier)
	actionName := naming.ActionName(r.Identifier)

	action := &Struct{
		Doc:      naming.ResourceDoc(r.Identifier),
		Name:     actionName,
		Lifetime: lifetime,
		Derives:  builderDerives,
		Fields:   []Field{{Vis: "pub(crate)", Name: reqwestField, Type: reqwestType}},
	}
	actionImpl := &Impl{Lifetime: lifetime, Type: actionName}

	var (
		defs     []*desc.EnumType
		builders []Item
	)
	for i := range r.Methods {
		art, err := generateMethod(sc, &r.Methods[i])
		if err != nil {
			return nil, err
		}
		actionImpl.Fns = append(actionImpl.Fns, art.Callable)
		builders = append(builders, art.Builder, art.BuilderImpl)
		defs = appendTypeDefs(defs, art.TypeDefs...)
	}

	var children []Item
	for i := range r.Resources {
		child := &r.Resources[i]
		mod, err := generateResource(sc, child)
		if err != nil {
			return nil, err
		}
		children = append(children, mod)
		actionImpl.Fns = append(actionImpl.Fns, childCallable(child))
	}

	items := []Item{paramTypesModule(defs), action, actionImpl}
	items = append(items, builders...)
	items = append(items, children...)
	return &Module{Name: naming.ModuleName(r.Identifier), Items: items}, nil
}

// childCallable returns the action callable that hands out a child's actions.
func childCallable(child *desc.Resource) Fn {
	typ := naming.ModuleName(child.Identifier) + "::" + naming.ActionName(child.Identifier)
	return Fn{
		Doc:      naming.ResourceDoc(child.Identifier),
		Name:     naming.VarName(child.Identifier),
		Receiver: "&self",
		Returns:  typ + "<" + lifetime + ">",
		Body: []Stmt{&StructLit{
			Type:   typ,
			Fields: []FieldInit{{Name: reqwestField, Expr: "self." + reqwestField}},
		}},
	}
}
