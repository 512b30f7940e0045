package desc

// TypeKind identifies the category of a parameter type.
type TypeKind int

const (
	KindPrimitive TypeKind = iota // Single value passed directly
	KindEnum                      // Closed set of string values; needs a generated definition
	KindArray                     // Repeated value
)

// String returns the string representation of the type kind.
func (k TypeKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEnum:
		return "Enum"
	case KindArray:
		return "Array"
	default:
		return "Unknown"
	}
}

// InitMethod describes how a generated call site accepts a parameter value.
type InitMethod int

const (
	// InitByValue accepts the declared type itself.
	InitByValue InitMethod = iota

	// InitInto accepts any value convertible into the declared type.
	InitInto
)

// String returns the string representation of the init method.
func (m InitMethod) String() string {
	switch m {
	case InitByValue:
		return "ByValue"
	case InitInto:
		return "Into"
	default:
		return "Unknown"
	}
}

// ParamType is the sealed sum type classifying parameter values.
// The conversion policy belongs to each variant.
type ParamType interface {
	// Kind returns the type kind for type switching.
	Kind() TypeKind

	// InitMethod returns the variant's conversion policy.
	InitMethod() InitMethod

	// TypeDef returns the structured definition this type requires, or nil
	// when the type is expressible without one.
	TypeDef() *EnumType

	// Ensure only types in this package can implement ParamType.
	sealed()
}

// PrimitiveKind identifies a primitive parameter type.
type PrimitiveKind int

const (
	PrimitiveString PrimitiveKind = iota
	PrimitiveBool
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveUint32
	PrimitiveUint64
	PrimitiveFloat32
	PrimitiveFloat64
	PrimitiveAny // Arbitrary JSON value
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveString:
		return "String"
	case PrimitiveBool:
		return "Bool"
	case PrimitiveInt32:
		return "Int32"
	case PrimitiveInt64:
		return "Int64"
	case PrimitiveUint32:
		return "Uint32"
	case PrimitiveUint64:
		return "Uint64"
	case PrimitiveFloat32:
		return "Float32"
	case PrimitiveFloat64:
		return "Float64"
	case PrimitiveAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// PrimitiveType is a value passed without a generated definition.
type PrimitiveType struct {
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (*PrimitiveType) Kind() TypeKind { return KindPrimitive }

// InitMethod returns InitInto for strings and InitByValue for everything else.
func (t *PrimitiveType) InitMethod() InitMethod {
	if t.PrimitiveKind == PrimitiveString {
		return InitInto
	}
	return InitByValue
}

// TypeDef returns nil.
func (*PrimitiveType) TypeDef() *EnumType { return nil }

func (*PrimitiveType) sealed() {}

// EnumType is a closed set of string values.
type EnumType struct {
	// Name is the schema-supplied type name (usually the parameter name).
	Name string

	// Description documents the enumeration.
	Description string

	// Variants are the allowed values in declared order.
	Variants []EnumVariant
}

// EnumVariant is one allowed enum value.
type EnumVariant struct {
	// Value is the value sent on the wire.
	Value string

	// Description documents the value.
	Description string
}

// Kind returns KindEnum.
func (*EnumType) Kind() TypeKind { return KindEnum }

// InitMethod returns InitByValue.
func (*EnumType) InitMethod() InitMethod { return InitByValue }

// TypeDef returns the enum itself.
func (t *EnumType) TypeDef() *EnumType { return t }

func (*EnumType) sealed() {}

// ArrayType is a repeated parameter.
type ArrayType struct {
	Element ParamType
}

// Kind returns KindArray.
func (*ArrayType) Kind() TypeKind { return KindArray }

// InitMethod returns InitByValue.
func (*ArrayType) InitMethod() InitMethod { return InitByValue }

// TypeDef returns the element's definition, if any.
func (t *ArrayType) TypeDef() *EnumType {
	if t.Element == nil {
		return nil
	}
	return t.Element.TypeDef()
}

func (*ArrayType) sealed() {}

// Convenience constructors.

// String returns a PrimitiveType for strings.
func String() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveString} }

// Bool returns a PrimitiveType for booleans.
func Bool() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveBool} }

// Int32 returns a PrimitiveType for 32-bit signed integers.
func Int32() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveInt32} }

// Int64 returns a PrimitiveType for 64-bit signed integers.
func Int64() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveInt64} }

// Uint32 returns a PrimitiveType for 32-bit unsigned integers.
func Uint32() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveUint32} }

// Uint64 returns a PrimitiveType for 64-bit unsigned integers.
func Uint64() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveUint64} }

// Float32 returns a PrimitiveType for 32-bit floats.
func Float32() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveFloat32} }

// Float64 returns a PrimitiveType for 64-bit floats.
func Float64() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveFloat64} }

// Any returns a PrimitiveType for arbitrary JSON values.
func Any() *PrimitiveType { return &PrimitiveType{PrimitiveKind: PrimitiveAny} }

// Enum returns an EnumType with the given name and values.
func Enum(name string, values ...string) *EnumType {
	e := &EnumType{Name: name}
	for _, v := range values {
		e.Variants = append(e.Variants, EnumVariant{Value: v})
	}
	return e
}

// Array returns an ArrayType of elem.
func Array(elem ParamType) *ArrayType { return &ArrayType{Element: elem} }
