package desc

import "testing"

func TestParamType_InitMethod(t *testing.T) {
	tests := []struct {
		name string
		typ  ParamType
		want InitMethod
	}{
		{"string", String(), InitInto},
		{"bool", Bool(), InitByValue},
		{"int64", Int64(), InitByValue},
		{"any", Any(), InitByValue},
		{"enum", Enum("Alt", "json"), InitByValue},
		{"array of strings", Array(String()), InitByValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.InitMethod(); got != tt.want {
				t.Errorf("InitMethod() = %s, want %s", got, tt.want)
			}
			p := Param{Identifier: "x", Type: tt.typ}
			if got := p.InitMethod(); got != tt.want {
				t.Errorf("Param.InitMethod() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParamType_TypeDef(t *testing.T) {
	alt := Enum("Alt", "json", "media")
	if alt.TypeDef() != alt {
		t.Error("enum TypeDef is not itself")
	}
	if Array(alt).TypeDef() != alt {
		t.Error("array TypeDef does not forward the element's")
	}
	if String().TypeDef() != nil || Array(Int32()).TypeDef() != nil {
		t.Error("primitive types contribute a definition")
	}
	if (Param{Identifier: "x"}).TypeDef() != nil {
		t.Error("untyped param contributes a definition")
	}
}

func TestParam_WireName(t *testing.T) {
	if got := (Param{Identifier: "file_id", Name: "fileId"}).WireName(); got != "fileId" {
		t.Errorf("WireName() = %q", got)
	}
	if got := (Param{Identifier: "fields"}).WireName(); got != "fields" {
		t.Errorf("WireName() = %q", got)
	}
}

func TestResource_Lookup(t *testing.T) {
	r := &Resource{
		Identifier: "files",
		Methods:    []Method{{ID: "get"}, {ID: "list", Params: []Param{{Identifier: "q"}, {Identifier: "spaces", Required: true}}}},
		Resources:  []Resource{{Identifier: "permissions", Resources: []Resource{{Identifier: "roles"}}}},
	}
	if r.FindMethod("list") == nil || r.FindMethod("delete") != nil {
		t.Error("FindMethod")
	}
	if r.FindResource("permissions") == nil || r.FindResource("roles") != nil {
		t.Error("FindResource")
	}
	if got := r.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
	req := r.FindMethod("list").RequiredParams()
	if len(req) != 1 || req[0].Identifier != "spaces" {
		t.Errorf("RequiredParams() = %+v", req)
	}
}

func TestServiceDescription_BaseURL(t *testing.T) {
	d := &ServiceDescription{RootURL: "https://www.googleapis.com/", ServicePath: "drive/v3/"}
	if got := d.BaseURL(); got != "https://www.googleapis.com/drive/v3/" {
		t.Errorf("BaseURL() = %q", got)
	}
}
