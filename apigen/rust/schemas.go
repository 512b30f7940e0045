package rust

import (
	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

// Schema structs share a module with arbitrarily named schemas, so their
// field types name std items by absolute path.
const (
	stdOption = "::std::option::Option"
	stdBox    = "::std::boxed::Box"
	stdVec    = "::std::vec::Vec"
	stdString = "::std::string::String"
)

var schemaDerives = []string{
	"Debug", "Clone", "Default", "PartialEq",
	"::serde::Serialize", "::serde::Deserialize",
}

// schemasItems emits one struct per schema. Every field is optional so a
// partially populated body serializes without the missing fields.
func schemasItems(schemas []desc.Schema) ([]Item, error) {
	var items []Item
	for _, s := range schemas {
		st := &Struct{
			Doc:     s.Description,
			Name:    naming.TypeName(s.Name),
			Derives: schemaDerives,
		}
		for _, prop := range s.Properties {
			typ, err := propertyType(prop)
			if err != nil {
				loc := desc.Location{Schema: s.Name, Param: prop.Name}
				return nil, loc.Errorf(desc.CodeUnclassifiedType, "%v", err)
			}
			st.Fields = append(st.Fields, Field{
				Doc: prop.Description,
				Attrs: []string{
					"#[serde(rename = " + naming.StringLiteral(prop.Name) +
						", default, skip_serializing_if = \"std::option::Option::is_none\")]",
				},
				Vis:  "pub",
				Name: naming.VarName(prop.Name),
				Type: stdOption + "<" + typ + ">",
			})
		}
		items = append(items, st)
	}
	return items, nil
}

// propertyType maps a schema property to its Rust type. Enum values in
// bodies are carried as strings; singular references are boxed since
// schemas may refer to themselves.
func propertyType(prop desc.SchemaProperty) (string, error) {
	if prop.Ref != "" {
		ref := naming.TypeName(prop.Ref)
		if prop.Repeated {
			return stdVec + "<" + ref + ">", nil
		}
		return stdBox + "<" + ref + ">", nil
	}
	return bodyType(prop.Type)
}

func bodyType(t desc.ParamType) (string, error) {
	switch t := t.(type) {
	case *desc.EnumType:
		return stdString, nil
	case *desc.PrimitiveType:
		if t != nil && t.PrimitiveKind == desc.PrimitiveString {
			return stdString, nil
		}
		return typePath(t, "")
	case *desc.ArrayType:
		elem, err := bodyType(t.Element)
		if err != nil {
			return "", err
		}
		return stdVec + "<" + elem + ">", nil
	default:
		return typePath(t, "")
	}
}
