package desc

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func validDescription() *ServiceDescription {
	return &ServiceDescription{
		Name:    "drive",
		Version: "v3",
		RootURL: "https://www.googleapis.com/",
		GlobalParams: []Param{
			{Identifier: "alt", Type: Enum("Alt", "json")},
		},
		Resource: &Resource{
			Identifier: "resources",
			Resources: []Resource{{
				Identifier: "files",
				Methods: []Method{{
					ID:         "create",
					HTTPMethod: "POST",
					Request:    &TypeRef{Name: "File"},
					Params: []Param{
						{Identifier: "file_id", Required: true, Location: "path", Type: String()},
					},
				}},
			}},
		},
		Schemas: []Schema{{
			Name:       "File",
			Properties: []SchemaProperty{{Name: "id", Type: String()}},
		}},
	}
}

func TestValidate_Valid(t *testing.T) {
	warnings, errs := Validate(validDescription())
	if len(errs) != 0 {
		t.Errorf("Validate() errors = %v", errs)
	}
	if len(warnings) != 0 {
		t.Errorf("Validate() warnings = %v", warnings)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(d *ServiceDescription)
		code     ErrorCode
		location string
	}{
		{
			name:   "missing name",
			modify: func(d *ServiceDescription) { d.Name = "" },
			code:   CodeInvalidField,
		},
		{
			name:   "bad root url",
			modify: func(d *ServiceDescription) { d.RootURL = "not a url" },
			code:   CodeInvalidField,
		},
		{
			name:   "missing resource",
			modify: func(d *ServiceDescription) { d.Resource = nil },
			code:   CodeMissingResource,
		},
		{
			name: "bad http method",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources[0].Methods[0].HTTPMethod = "FETCH"
			},
			code:     CodeInvalidField,
			location: "resource resources.files, method create",
		},
		{
			name: "unknown request schema",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources[0].Methods[0].Request.Name = "Folder"
			},
			code:     CodeUnknownSchema,
			location: "resource resources.files, method create",
		},
		{
			name: "param without type",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources[0].Methods[0].Params[0].Type = nil
			},
			code:     CodeInvalidField,
			location: "resource resources.files, method create, param file_id",
		},
		{
			name: "enum without values",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources[0].Methods[0].Params[0].Type = Enum("Empty")
			},
			code:     CodeUnclassifiedType,
			location: "param file_id",
		},
		{
			name: "bad location",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources[0].Methods[0].Params[0].Location = "body"
			},
			code: CodeInvalidField,
		},
		{
			name: "nested array",
			modify: func(d *ServiceDescription) {
				d.GlobalParams[0].Type = Array(Array(String()))
			},
			code:     CodeUnclassifiedType,
			location: "param alt",
		},
		{
			name: "schema property reference",
			modify: func(d *ServiceDescription) {
				d.Schemas[0].Properties = append(d.Schemas[0].Properties, SchemaProperty{Name: "owner", Ref: "User"})
			},
			code:     CodeUnknownSchema,
			location: "schema File, property owner",
		},
		{
			name: "schema property without type",
			modify: func(d *ServiceDescription) {
				d.Schemas[0].Properties = append(d.Schemas[0].Properties, SchemaProperty{Name: "owner"})
			},
			code: CodeUnclassifiedType,
		},
		{
			name: "child without identifier",
			modify: func(d *ServiceDescription) {
				d.Resource.Resources = append(d.Resource.Resources, Resource{})
			},
			code: CodeInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescription()
			tt.modify(d)
			_, errs := Validate(d)
			if len(errs) == 0 {
				t.Fatal("Validate() errors = none")
			}
			if errs[0].Code != tt.code {
				t.Errorf("code = %s, want %s (%v)", errs[0].Code, tt.code, errs)
			}
			if tt.location != "" && !strings.Contains(errs[0].Error(), tt.location) {
				t.Errorf("error %q does not mention %q", errs[0].Error(), tt.location)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	d := validDescription()
	d.Name = ""
	d.Resource.Resources[0].Methods[0].HTTPMethod = "FETCH"
	d.Resource.Resources[0].Methods[0].Request.Name = "Folder"
	_, errs := Validate(d)
	if len(errs) != 3 {
		t.Fatalf("errors = %d, want 3: %v", len(errs), errs)
	}
	if !strings.HasPrefix(errs.Error(), "3 schema errors:") {
		t.Errorf("Error() = %q", errs.Error())
	}

	var err error = errs
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatal("errors.As did not find a SchemaError")
	}
	if se != errs[0] {
		t.Errorf("errors.As found %v, want the first error", se)
	}
}

func TestValidate_RequiredGlobalWarns(t *testing.T) {
	d := validDescription()
	d.GlobalParams[0].Required = true
	warnings, errs := Validate(d)
	if len(errs) != 0 {
		t.Fatalf("errors = %v", errs)
	}
	if len(warnings) != 1 || warnings[0].Code != "global_param_required" || warnings[0].Param != "alt" {
		t.Errorf("warnings = %+v", warnings)
	}
}

func TestCheckType(t *testing.T) {
	tests := []struct {
		name    string
		typ     ParamType
		wantErr string
	}{
		{"string", String(), ""},
		{"any", Any(), ""},
		{"enum", Enum("Alt", "json"), ""},
		{"array of enum", Array(Enum("Order", "name")), ""},
		{"nil", nil, "missing type"},
		{"unknown primitive", &PrimitiveType{PrimitiveKind: PrimitiveKind(99)}, "unknown primitive kind"},
		{"unnamed enum", Enum("", "a"), "no name"},
		{"empty value", Enum("E", ""), "empty value"},
		{"array without element", &ArrayType{}, "array element: missing type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckType(tt.typ)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("CheckType() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("CheckType() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckType_NestedArrayHint(t *testing.T) {
	err := CheckType(Array(Array(String())))
	if err == nil {
		t.Fatal("CheckType() error = nil")
	}
	hints := errors.GetAllHints(err)
	if len(hints) != 1 || !strings.Contains(hints[0], "schema property") {
		t.Errorf("hints = %q", hints)
	}

	err = CheckType(Array(Enum("Order")))
	if err == nil || err.Error() != "array element: enum Order has no values" {
		t.Errorf("CheckType() error = %v", err)
	}
}

func TestSchemaError_Error(t *testing.T) {
	e := &SchemaError{Code: CodeIdentifierCollision, Resource: "files", Method: "get", Param: "fileId", Message: "boom"}
	want := "resource files, method get, param fileId: identifier_collision: boom"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	e = &SchemaError{Code: CodeUnknownSchema, Schema: "File", Param: "owner", Message: "boom"}
	want = "schema File, property owner: unknown_schema: boom"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
	e = &SchemaError{Code: CodeMissingResource, Message: "none"}
	if e.Error() != "missing_resource: none" {
		t.Errorf("Error() = %q", e.Error())
	}
}
