package rust

import (
	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

// Module holding parameter type definitions, relative to the module that
// declares the parameters.
const paramsModule = "params"

// Crate-level module holding parameter type definitions for global parameters.
const globalParamsModule = "crate::params"

// Crate-level module holding request body types.
const schemasModule = "crate::schemas"

var enumDerives = []string{
	"Debug", "Clone", "Copy", "PartialEq", "Eq", "Hash",
	"::serde::Serialize", "::serde::Deserialize",
}

// typePath returns the Rust type for t. Enum definitions are resolved
// against defsModule.
func typePath(t desc.ParamType, defsModule string) (string, error) {
	switch t := t.(type) {
	case *desc.PrimitiveType:
		return primitivePath(t)
	case *desc.EnumType:
		name := naming.TypeName(t.Name)
		if name == "" {
			return "", errors.Newf("enum name %q has no identifier characters", t.Name)
		}
		return defsModule + "::" + name, nil
	case *desc.ArrayType:
		elem, err := typePath(t.Element, defsModule)
		if err != nil {
			return "", errors.Wrap(err, "array element")
		}
		return "Vec<" + elem + ">", nil
	case nil:
		return "", errors.New("missing type")
	default:
		return "", errors.Newf("unsupported type kind: %s", t.Kind())
	}
}

func primitivePath(p *desc.PrimitiveType) (string, error) {
	switch p.PrimitiveKind {
	case desc.PrimitiveString:
		return "String", nil
	case desc.PrimitiveBool:
		return "bool", nil
	case desc.PrimitiveInt32:
		return "i32", nil
	case desc.PrimitiveInt64:
		return "i64", nil
	case desc.PrimitiveUint32:
		return "u32", nil
	case desc.PrimitiveUint64:
		return "u64", nil
	case desc.PrimitiveFloat32:
		return "f32", nil
	case desc.PrimitiveFloat64:
		return "f64", nil
	case desc.PrimitiveAny:
		return "::serde_json::Value", nil
	default:
		return "", errors.Newf("unknown primitive kind: %s", p.PrimitiveKind)
	}
}

// argType returns the declared type of a call argument accepting t.
func argType(t desc.ParamType, defsModule string) (string, error) {
	path, err := typePath(t, defsModule)
	if err != nil {
		return "", err
	}
	if t.InitMethod() == desc.InitInto {
		return "impl Into<" + path + ">", nil
	}
	return path, nil
}

// argExpr converts the call argument name into a field value for t.
func argExpr(t desc.ParamType, name string) string {
	if t.InitMethod() == desc.InitInto {
		return name + ".into()"
	}
	return name
}

// enumItems emits the definition of e: the enum and an impl exposing the wire values.
func enumItems(e *desc.EnumType) []Item {
	name := naming.TypeName(e.Name)
	enum := &Enum{
		Doc:     e.Description,
		Name:    name,
		Derives: enumDerives,
	}
	asStr := Fn{
		Doc:      "The value sent on the wire.",
		Name:     "as_str",
		Receiver: "&self",
		Returns:  "&'static str",
		Body:     []Stmt{Line("match self {")},
	}
	for _, v := range e.Variants {
		vname := naming.VariantName(v.Value)
		enum.Variants = append(enum.Variants, Variant{
			Doc:   v.Description,
			Attrs: []string{"#[serde(rename = " + naming.StringLiteral(v.Value) + ")]"},
			Name:  vname,
		})
		asStr.Body = append(asStr.Body, Line(indentUnit+name+"::"+vname+" => "+naming.StringLiteral(v.Value)+","))
	}
	asStr.Body = append(asStr.Body, Line("}"))
	return []Item{enum, &Impl{Type: name, Fns: []Fn{asStr}}}
}

// sameEnum reports whether two definitions describe the same type.
func sameEnum(a, b *desc.EnumType) bool {
	if a == b {
		return true
	}
	if naming.TypeName(a.Name) != naming.TypeName(b.Name) || len(a.Variants) != len(b.Variants) {
		return false
	}
	for i := range a.Variants {
		if a.Variants[i].Value != b.Variants[i].Value {
			return false
		}
	}
	return true
}

// collectTypeDefs returns the definitions needed by params in order.
// Definitions equal under sameEnum appear once, the first one kept. The
// resource walker merges across methods with the same rule.
func collectTypeDefs(params []desc.Param) []*desc.EnumType {
	var defs []*desc.EnumType
	for _, p := range params {
		if def := p.TypeDef(); def != nil {
			defs = appendTypeDefs(defs, def)
		}
	}
	return defs
}

func appendTypeDefs(defs []*desc.EnumType, add ...*desc.EnumType) []*desc.EnumType {
outer:
	for _, def := range add {
		for _, seen := range defs {
			if sameEnum(seen, def) {
				continue outer
			}
		}
		defs = append(defs, def)
	}
	return defs
}

// paramTypesModule emits the parameter-types module for defs.
func paramTypesModule(defs []*desc.EnumType) *Module {
	m := &Module{Name: paramsModule}
	for _, def := range defs {
		m.Items = append(m.Items, enumItems(def)...)
	}
	return m
}
