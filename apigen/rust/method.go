package rust

import (
	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

const (
	reqwestField = "reqwest"
	requestField = "request"
	reqwestType  = "&'a ::reqwest::Client"
	lifetime     = "'a"
)

var builderDerives = []string{"Debug", "Clone"}

// methodArtifact is everything one method contributes to its resource module.
type methodArtifact struct {
	// Builder and BuilderImpl are declared in the resource module.
	Builder     *Struct
	BuilderImpl *Impl

	// Callable is added to the resource's action impl.
	Callable Fn

	// TypeDefs are the parameter type definitions the method's own params need.
	TypeDefs []*desc.EnumType
}

// generateMethod emits the builder for m and the action callable that
// constructs it.
func generateMethod(sc scope, m *desc.Method) (*methodArtifact, error) {
	loc := sc.methodLoc(m.ID)
	builderName := naming.BuilderName(m.ID)
	builderRef := builderName + "<" + lifetime + ">"

	builder := &Struct{
		Doc:      m.Description,
		Name:     builderName,
		Lifetime: lifetime,
		Derives:  builderDerives,
		Attrs:    []string{"#[allow(dead_code)]"},
		Fields:   []Field{{Name: reqwestField, Type: reqwestType}},
	}
	impl := &Impl{Lifetime: lifetime, Type: builderName}
	callable := Fn{
		Doc:      m.Description,
		Name:     naming.VarName(m.ID),
		Receiver: "&self",
		Returns:  builderRef,
	}
	lit := &StructLit{
		Type:   builderName,
		Fields: []FieldInit{{Name: reqwestField, Expr: "self." + reqwestField}},
	}

	if m.Request != nil {
		typ := schemasModule + "::" + naming.TypeName(m.Request.Name)
		builder.Fields = append(builder.Fields, Field{Name: requestField, Type: typ})
		callable.Args = append(callable.Args, Arg{Name: requestField, Type: typ})
		lit.Fields = append(lit.Fields, FieldInit{Name: requestField})
	}

	// Globals are always optional. A required global is reported as a
	// warning during validation and left unset here.
	for _, p := range sc.globalParams {
		ploc := loc
		ploc.Param = p.WireName()
		typ, err := typePath(p.Type, globalParamsModule)
		if err != nil {
			return nil, ploc.Errorf(desc.CodeUnclassifiedType, "%v", err)
		}
		name := naming.FieldName(p.Identifier)
		builder.Fields = append(builder.Fields, Field{Doc: p.Description, Name: name, Type: "Option<" + typ + ">"})
		lit.Fields = append(lit.Fields, FieldInit{Name: name, Expr: "None"})
		setter, err := optionalSetter(p, globalParamsModule)
		if err != nil {
			return nil, ploc.Errorf(desc.CodeUnclassifiedType, "%v", err)
		}
		impl.Fns = append(impl.Fns, setter)
	}

	for _, p := range m.Params {
		ploc := loc
		ploc.Param = p.WireName()
		typ, err := typePath(p.Type, paramsModule)
		if err != nil {
			return nil, ploc.Errorf(desc.CodeUnclassifiedType, "%v", err)
		}
		name := naming.FieldName(p.Identifier)
		if p.Required {
			arg, err := argType(p.Type, paramsModule)
			if err != nil {
				return nil, ploc.Errorf(desc.CodeUnclassifiedType, "%v", err)
			}
			builder.Fields = append(builder.Fields, Field{Doc: p.Description, Name: name, Type: typ})
			callable.Args = append(callable.Args, Arg{Name: name, Type: arg})
			lit.Fields = append(lit.Fields, FieldInit{Name: name, Expr: argExpr(p.Type, name)})
			continue
		}
		builder.Fields = append(builder.Fields, Field{Doc: p.Description, Name: name, Type: "Option<" + typ + ">"})
		lit.Fields = append(lit.Fields, FieldInit{Name: name, Expr: "None"})
		setter, err := optionalSetter(p, paramsModule)
		if err != nil {
			return nil, ploc.Errorf(desc.CodeUnclassifiedType, "%v", err)
		}
		impl.Fns = append(impl.Fns, setter)
	}

	if m.HTTPMethod != "" {
		impl.Consts = append(impl.Consts, Const{
			Doc:   "HTTP method of the request.",
			Name:  "HTTP_METHOD",
			Type:  "&'static str",
			Value: naming.StringLiteral(m.HTTPMethod),
		})
	}
	if m.Path != "" {
		impl.Consts = append(impl.Consts,
			Const{
				Doc:   "Path of the request relative to the service base URL.",
				Name:  "PATH",
				Type:  "&'static str",
				Value: naming.StringLiteral(m.Path),
			},
			Const{
				Doc:   "URL template of the request.",
				Name:  "URL",
				Type:  "&'static str",
				Value: naming.StringLiteral(sc.rootURL + sc.servicePath + m.Path),
			},
		)
	}

	callable.Body = []Stmt{lit}
	return &methodArtifact{
		Builder:     builder,
		BuilderImpl: impl,
		Callable:    callable,
		TypeDefs:    collectTypeDefs(m.Params),
	}, nil
}

// optionalSetter emits the chained setter for an optional parameter.
func optionalSetter(p desc.Param, defsModule string) (Fn, error) {
	arg, err := argType(p.Type, defsModule)
	if err != nil {
		return Fn{}, err
	}
	name := naming.FieldName(p.Identifier)
	return Fn{
		Doc:      p.Description,
		Name:     name,
		Receiver: "mut self",
		Args:     []Arg{{Name: "value", Type: arg}},
		Returns:  "Self",
		Body: []Stmt{
			Line("self." + name + " = Some(" + argExpr(p.Type, "value") + ");"),
			Line("self"),
		},
	}, nil
}
