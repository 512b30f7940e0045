package desc

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorCode is a machine-readable schema error identifier.
type ErrorCode string

const (
	CodeInvalidField        ErrorCode = "invalid_field"
	CodeMissingResource     ErrorCode = "missing_resource"
	CodeUnclassifiedType    ErrorCode = "unclassified_type"
	CodeIdentifierCollision ErrorCode = "identifier_collision"
	CodeUnknownSchema       ErrorCode = "unknown_schema"
	CodeInvalidIdentifier   ErrorCode = "invalid_identifier"
)

// SchemaError locates a problem in a description.
type SchemaError struct {
	Code ErrorCode

	// Resource is the dotted path of the resource, empty for service-level errors.
	Resource string

	// Method is the method id, if the error is inside a method.
	Method string

	// Schema is the schema name, if the error is inside a schema.
	Schema string

	// Param is the parameter name, or the property name when Schema is set.
	Param string

	Message string
}

func (e *SchemaError) Error() string {
	var loc []string
	if e.Resource != "" {
		loc = append(loc, "resource "+e.Resource)
	}
	if e.Method != "" {
		loc = append(loc, "method "+e.Method)
	}
	if e.Schema != "" {
		loc = append(loc, "schema "+e.Schema)
	}
	switch {
	case e.Param != "" && e.Schema != "":
		loc = append(loc, "property "+e.Param)
	case e.Param != "":
		loc = append(loc, "param "+e.Param)
	}
	if len(loc) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", strings.Join(loc, ", "), e.Code, e.Message)
}

// SchemaErrors is every SchemaError found in one validation pass.
type SchemaErrors []*SchemaError

func (errs SchemaErrors) Error() string {
	switch len(errs) {
	case 0:
		return "no schema errors"
	case 1:
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d schema errors:\n\t%s", len(errs), strings.Join(msgs, "\n\t"))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (errs SchemaErrors) Unwrap() []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

// Location is the position of a description element in the resource tree.
type Location struct {
	Resource string
	Method   string
	Schema   string
	Param    string
}

// Errorf builds a SchemaError at loc.
func (loc Location) Errorf(code ErrorCode, format string, args ...any) *SchemaError {
	return &SchemaError{
		Code:     code,
		Resource: loc.Resource,
		Method:   loc.Method,
		Schema:   loc.Schema,
		Param:    loc.Param,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Child returns the location of a child resource.
func (loc Location) Child(identifier string) Location {
	if loc.Resource == "" {
		return Location{Resource: identifier}
	}
	return Location{Resource: loc.Resource + "." + identifier}
}

// Validate checks the description for structural problems.
// It returns every error found (not just the first) and any warnings.
func Validate(d *ServiceDescription) ([]Warning, SchemaErrors) {
	var (
		errs     SchemaErrors
		warnings []Warning
	)

	errs = append(errs, validateStruct(Location{}, d)...)
	if d.Resource == nil {
		errs = append(errs, Location{}.Errorf(CodeMissingResource, "service has no resource tree"))
		return warnings, errs
	}

	for _, p := range d.GlobalParams {
		loc := Location{Param: p.WireName()}
		errs = append(errs, validateParam(loc, p)...)
		if p.Required {
			warnings = append(warnings, Warning{
				Code:    "global_param_required",
				Message: "global parameter " + p.WireName() + " is marked required; generated builders leave it unset",
				Param:   p.WireName(),
			})
		}
	}

	schemas := make(map[string]bool, len(d.Schemas))
	for _, s := range d.Schemas {
		schemas[s.Name] = true
	}
	for _, s := range d.Schemas {
		errs = append(errs, validateSchema(s, schemas)...)
	}

	errs = append(errs, validateResource(Location{Resource: d.Resource.Identifier}, d.Resource, schemas)...)
	return warnings, errs
}

func validateResource(loc Location, r *Resource, schemas map[string]bool) SchemaErrors {
	errs := validateStruct(loc, r)
	for i := range r.Methods {
		m := &r.Methods[i]
		mloc := Location{Resource: loc.Resource, Method: m.ID}
		errs = append(errs, validateStruct(mloc, m)...)
		if m.Request != nil && !schemas[m.Request.Name] {
			errs = append(errs, mloc.Errorf(CodeUnknownSchema, "request body references unknown schema %q", m.Request.Name))
		}
		for _, p := range m.Params {
			ploc := mloc
			ploc.Param = p.WireName()
			errs = append(errs, validateParam(ploc, p)...)
		}
	}
	for i := range r.Resources {
		child := &r.Resources[i]
		errs = append(errs, validateResource(loc.Child(child.Identifier), child, schemas)...)
	}
	return errs
}

func validateParam(loc Location, p Param) SchemaErrors {
	errs := validateStruct(loc, p)
	if p.Type != nil {
		if err := CheckType(p.Type); err != nil {
			errs = append(errs, loc.Errorf(CodeUnclassifiedType, "%v", err))
		}
	}
	return errs
}

func validateSchema(s Schema, schemas map[string]bool) SchemaErrors {
	loc := Location{Schema: s.Name}
	errs := validateStruct(loc, s)
	for _, prop := range s.Properties {
		ploc := Location{Schema: s.Name, Param: prop.Name}
		switch {
		case prop.Ref != "":
			if !schemas[prop.Ref] {
				errs = append(errs, ploc.Errorf(CodeUnknownSchema, "property references unknown schema %q", prop.Ref))
			}
		case prop.Type == nil:
			errs = append(errs, ploc.Errorf(CodeUnclassifiedType, "property has neither a type nor a reference"))
		default:
			if err := CheckType(prop.Type); err != nil {
				errs = append(errs, ploc.Errorf(CodeUnclassifiedType, "%v", err))
			}
		}
	}
	return errs
}

// CheckType reports whether t is a fully classified parameter type.
func CheckType(t ParamType) error {
	switch t := t.(type) {
	case nil:
		return errors.New("missing type")
	case *PrimitiveType:
		if t == nil {
			return errors.New("nil primitive type")
		}
		if t.PrimitiveKind < PrimitiveString || t.PrimitiveKind > PrimitiveAny {
			return errors.Newf("unknown primitive kind %d", t.PrimitiveKind)
		}
	case *EnumType:
		if t == nil {
			return errors.New("nil enum type")
		}
		if t.Name == "" {
			return errors.New("enum has no name")
		}
		if len(t.Variants) == 0 {
			return errors.Newf("enum %s has no values", t.Name)
		}
		for _, v := range t.Variants {
			if v.Value == "" {
				return errors.Newf("enum %s has an empty value", t.Name)
			}
		}
	case *ArrayType:
		if t == nil {
			return errors.New("nil array type")
		}
		if _, nested := t.Element.(*ArrayType); nested {
			return errors.WithHint(errors.New("nested arrays are not supported"),
				"model the inner array as a schema property instead")
		}
		if err := CheckType(t.Element); err != nil {
			return errors.Wrap(err, "array element")
		}
	default:
		return errors.Newf("unsupported type kind %s", t.Kind())
	}
	return nil
}

// validateStruct runs the struct tag rules on v and converts failures to SchemaErrors.
func validateStruct(loc Location, v any) SchemaErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return SchemaErrors{loc.Errorf(CodeInvalidField, "%v", err)}
	}
	var errs SchemaErrors
	for _, fe := range verrs {
		errs = append(errs, loc.Errorf(CodeInvalidField, "field %s failed %q validation", fe.Field(), fe.Tag()))
	}
	return errs
}
