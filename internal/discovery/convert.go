package discovery

import (
	"maps"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/ggriffiniii/google-apis/apigen/desc"
	"github.com/ggriffiniii/google-apis/apigen/naming"
)

// RootIdentifier names the resource holding a service's top-level methods and resources.
const RootIdentifier = "resources"

// ServiceDescription converts the document into a service description.
// Maps are visited in key order, so the result is deterministic.
func (doc *Document) ServiceDescription() (*desc.ServiceDescription, error) {
	var errs desc.SchemaErrors
	d := &desc.ServiceDescription{
		Name:        doc.Name,
		Version:     doc.Version,
		Title:       doc.Title,
		RootURL:     doc.RootURL,
		ServicePath: doc.ServicePath,
	}

	for _, name := range sortedKeys(doc.Parameters) {
		p, err := convertParam(desc.Location{Param: name}, name, name, doc.Parameters[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		d.GlobalParams = append(d.GlobalParams, p)
	}

	root, rerrs := convertResource(desc.Location{Resource: RootIdentifier}, RootIdentifier, Resource{
		Methods:   doc.Methods,
		Resources: doc.Resources,
	})
	errs = append(errs, rerrs...)
	d.Resource = &root

	for _, name := range sortedKeys(doc.Schemas) {
		s, serrs := convertSchema(name, doc.Schemas[name])
		errs = append(errs, serrs...)
		d.Schemas = append(d.Schemas, s)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return d, nil
}

func convertResource(loc desc.Location, identifier string, r Resource) (desc.Resource, desc.SchemaErrors) {
	var errs desc.SchemaErrors
	out := desc.Resource{Identifier: identifier}
	for _, id := range sortedKeys(r.Methods) {
		m, merrs := convertMethod(desc.Location{Resource: loc.Resource, Method: id}, id, r.Methods[id])
		errs = append(errs, merrs...)
		out.Methods = append(out.Methods, m)
	}
	for _, name := range sortedKeys(r.Resources) {
		child, cerrs := convertResource(loc.Child(name), name, r.Resources[name])
		errs = append(errs, cerrs...)
		out.Resources = append(out.Resources, child)
	}
	return out, errs
}

func convertMethod(loc desc.Location, id string, m Method) (desc.Method, desc.SchemaErrors) {
	var errs desc.SchemaErrors
	out := desc.Method{
		ID:          id,
		Description: m.Description,
		HTTPMethod:  m.HTTPMethod,
		Path:        m.Path,
	}
	if m.Request != nil && m.Request.Ref != "" {
		out.Request = &desc.TypeRef{Name: m.Request.Ref}
	}
	for _, name := range paramOrder(m) {
		ploc := loc
		ploc.Param = name
		// Enum names are prefixed with the method so that same-named params
		// of sibling methods do not collide in the resource's params module.
		p, err := convertParam(ploc, id+"_"+name, name, m.Parameters[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Params = append(out.Params, p)
	}
	return out, errs
}

// paramOrder returns the params named in parameterOrder, then the rest alphabetically.
func paramOrder(m Method) []string {
	seen := make(map[string]bool, len(m.Parameters))
	var names []string
	for _, name := range m.ParameterOrder {
		if _, ok := m.Parameters[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range sortedKeys(m.Parameters) {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

func convertParam(loc desc.Location, enumName, name string, p Parameter) (desc.Param, *desc.SchemaError) {
	typ, err := paramType(enumName, p)
	if err != nil {
		return desc.Param{}, loc.Errorf(desc.CodeUnclassifiedType, "%v", err)
	}
	out := desc.Param{
		Identifier:  naming.VarName(name),
		Name:        name,
		Description: p.Description,
		Required:    p.Required,
		Type:        typ,
	}
	if p.Location == "query" || p.Location == "path" {
		out.Location = p.Location
	}
	return out, nil
}

func paramType(enumName string, p Parameter) (desc.ParamType, error) {
	var typ desc.ParamType
	if len(p.Enum) > 0 {
		e := &desc.EnumType{Name: enumName, Description: p.Description}
		for i, v := range p.Enum {
			variant := desc.EnumVariant{Value: v}
			if i < len(p.EnumDescriptions) {
				variant.Description = p.EnumDescriptions[i]
			}
			e.Variants = append(e.Variants, variant)
		}
		typ = e
	} else {
		prim, err := primitiveType(p.Type, p.Format)
		if err != nil {
			return nil, err
		}
		typ = prim
	}
	if p.Repeated {
		typ = desc.Array(typ)
	}
	return typ, nil
}

// primitiveType maps a JSON schema type and format to a primitive.
// Formats without a dedicated primitive (dates, durations, bytes) are strings.
func primitiveType(typ, format string) (*desc.PrimitiveType, error) {
	switch typ {
	case "string":
		switch format {
		case "int64":
			return desc.Int64(), nil
		case "uint64":
			return desc.Uint64(), nil
		}
		return desc.String(), nil
	case "integer":
		switch format {
		case "", "int32":
			return desc.Int32(), nil
		case "uint32":
			return desc.Uint32(), nil
		}
		return nil, errors.Newf("unsupported integer format %q", format)
	case "number":
		switch format {
		case "float":
			return desc.Float32(), nil
		case "", "double":
			return desc.Float64(), nil
		}
		return nil, errors.Newf("unsupported number format %q", format)
	case "boolean":
		return desc.Bool(), nil
	case "any":
		return desc.Any(), nil
	}
	return nil, errors.Newf("unsupported type %q", typ)
}

func convertSchema(name string, s Schema) (desc.Schema, desc.SchemaErrors) {
	var errs desc.SchemaErrors
	out := desc.Schema{Name: name, Description: s.Description}
	for _, prop := range sortedKeys(s.Properties) {
		p, err := convertProperty(prop, s.Properties[prop])
		if err != nil {
			errs = append(errs, desc.Location{Schema: name, Param: prop}.Errorf(desc.CodeUnclassifiedType, "%v", err))
			continue
		}
		out.Properties = append(out.Properties, p)
	}
	return out, errs
}

func convertProperty(name string, s Schema) (desc.SchemaProperty, error) {
	out := desc.SchemaProperty{Name: name, Description: s.Description}
	switch {
	case s.Ref != "":
		out.Ref = s.Ref
	case s.Type == "array" && s.Items != nil && s.Items.Ref != "":
		out.Ref = s.Items.Ref
		out.Repeated = true
	case s.Type == "array" && s.Items != nil:
		elem, err := valueType(*s.Items)
		if err != nil {
			return out, err
		}
		out.Type = desc.Array(elem)
	default:
		typ, err := valueType(s)
		if err != nil {
			return out, err
		}
		out.Type = typ
	}
	return out, nil
}

// valueType maps an inline schema to a parameter type. Inline objects, maps
// and nested arrays have no named type and are carried as JSON values.
func valueType(s Schema) (desc.ParamType, error) {
	switch s.Type {
	case "", "object", "array", "any":
		return desc.Any(), nil
	}
	return primitiveType(s.Type, s.Format)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
