// Package desc defines the description model the client generator consumes.
// A ServiceDescription is built once from a parsed API description and is
// read-only for the duration of generation.
package desc

// ServiceDescription is the root of an API description.
type ServiceDescription struct {
	// Name is the API name (e.g., "drive").
	Name string `validate:"required"`

	// Version is the API version (e.g., "v3").
	Version string

	// Title is a human readable name for the API.
	Title string

	// RootURL is the base endpoint (e.g., "https://www.googleapis.com/").
	RootURL string `validate:"required,url"`

	// ServicePath is appended to RootURL to form the base of every method path.
	ServicePath string

	// GlobalParams are shared by every method of the service.
	GlobalParams []Param

	// Resource is the root of the resource tree. Its methods are the
	// service's top-level methods and its children the top-level resources.
	Resource *Resource `validate:"-"`

	// Schemas are the named types referenced by method request bodies.
	Schemas []Schema
}

// BaseURL returns RootURL joined with ServicePath.
func (d *ServiceDescription) BaseURL() string {
	return d.RootURL + d.ServicePath
}

// Resource is a named node in the API's namespace.
type Resource struct {
	// Identifier is the source-safe resource name.
	Identifier string `validate:"required"`

	// Methods are the resource's operations in declared order.
	Methods []Method

	// Resources are the child resources in declared order.
	Resources []Resource
}

// FindResource returns the direct child with the given identifier, or nil.
func (r *Resource) FindResource(identifier string) *Resource {
	for i := range r.Resources {
		if r.Resources[i].Identifier == identifier {
			return &r.Resources[i]
		}
	}
	return nil
}

// FindMethod returns the method with the given id, or nil.
func (r *Resource) FindMethod(id string) *Method {
	for i := range r.Methods {
		if r.Methods[i].ID == id {
			return &r.Methods[i]
		}
	}
	return nil
}

// Depth returns the height of the resource tree rooted at r.
// A resource without children has depth 0.
func (r *Resource) Depth() int {
	depth := 0
	for i := range r.Resources {
		if d := r.Resources[i].Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Method is one callable operation on a resource.
type Method struct {
	// ID is the schema name of the method. It may contain separators
	// ("insert-many", "batch.get") that need normalization.
	ID string `validate:"required"`

	// Description is the method's documentation, emitted verbatim.
	Description string

	// HTTPMethod is the HTTP verb, when known.
	HTTPMethod string `validate:"omitempty,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`

	// Path is the method's URL path relative to the service base URL.
	Path string

	// Params are the method-specific parameters in declared order.
	Params []Param

	// Request references the request body type. Nil when the method takes no body.
	Request *TypeRef
}

// RequiredParams returns the method-level params with Required set, in declared order.
func (m *Method) RequiredParams() []Param {
	var out []Param
	for _, p := range m.Params {
		if p.Required {
			out = append(out, p)
		}
	}
	return out
}

// TypeRef references a named schema.
type TypeRef struct {
	Name string `validate:"required"`
}

// Param is a single method or global parameter.
type Param struct {
	// Identifier is the normalized parameter name.
	Identifier string `validate:"required"`

	// Name is the name used on the wire (e.g., "fileId"). Defaults to Identifier.
	Name string

	// Description documents the parameter.
	Description string

	// Required marks parameters the caller must supply.
	Required bool

	// Location is where the parameter is sent: "query" or "path".
	Location string `validate:"omitempty,oneof=query path"`

	// Type classifies the parameter's value.
	Type ParamType `validate:"required"`
}

// WireName returns Name, falling back to Identifier.
func (p Param) WireName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Identifier
}

// InitMethod reports how a call argument for this parameter is accepted.
// It is derived from Type and cannot disagree with it.
func (p Param) InitMethod() InitMethod {
	if p.Type == nil {
		return InitByValue
	}
	return p.Type.InitMethod()
}

// TypeDef returns the structured definition contributed by this parameter, or nil.
func (p Param) TypeDef() *EnumType {
	if p.Type == nil {
		return nil
	}
	return p.Type.TypeDef()
}

// Schema is a named request type.
type Schema struct {
	Name        string `validate:"required"`
	Description string
	Properties  []SchemaProperty
}

// SchemaProperty is one field of a Schema.
type SchemaProperty struct {
	Name        string `validate:"required"`
	Description string

	// Type is the property's value type. Ref is set instead for references
	// to other schemas.
	Type ParamType
	Ref  string

	// Repeated wraps Ref in a list.
	Repeated bool
}

// Warning represents a non-fatal issue found in a description.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// Param is the parameter that triggered the warning, if any.
	Param string
}
