package manifest

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestCargo(t *testing.T) {
	doc := Cargo("drive")
	if doc.Package.Name != "drive" {
		t.Errorf("Package.Name = %q, want %q", doc.Package.Name, "drive")
	}
	if doc.Package.Version != "0.1.0" {
		t.Errorf("Package.Version = %q, want %q", doc.Package.Version, "0.1.0")
	}
	if doc.Package.Edition != "2018" {
		t.Errorf("Package.Edition = %q, want %q", doc.Package.Edition, "2018")
	}
	for _, dep := range []string{"serde", "serde_json", "chrono", "reqwest", "field_selector", "mime", "textnonce"} {
		if _, ok := doc.Dependencies[dep]; !ok {
			t.Errorf("missing dependency %s", dep)
		}
	}
}

func TestCargo_Independent(t *testing.T) {
	a := Cargo("a")
	b := Cargo("b")
	if a.Package.Name != "a" || b.Package.Name != "b" {
		t.Errorf("names = %q, %q", a.Package.Name, b.Package.Name)
	}
}

// Parsing the output yields the template with only name and version replaced.
func TestMarshal_RoundTrip(t *testing.T) {
	out, err := Cargo("drive").Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse(output) error = %v\n%s", err, out)
	}
	want, err := Parse([]byte(template))
	if err != nil {
		t.Fatalf("Parse(template) error = %v", err)
	}

	if got.Package.Name != "drive" || got.Package.Version != Version {
		t.Errorf("package = %s %s, want drive %s", got.Package.Name, got.Package.Version, Version)
	}
	if !reflect.DeepEqual(got.Package.Authors, want.Package.Authors) {
		t.Errorf("authors = %v, want %v", got.Package.Authors, want.Package.Authors)
	}
	if got.Package.Edition != want.Package.Edition {
		t.Errorf("edition = %q, want %q", got.Package.Edition, want.Package.Edition)
	}
	if !reflect.DeepEqual(got.Dependencies, want.Dependencies) {
		t.Errorf("dependencies = %v, want %v", got.Dependencies, want.Dependencies)
	}
}

func TestMarshal_Deterministic(t *testing.T) {
	first, err := Cargo("drive").Marshal()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Cargo("drive").Marshal()
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != string(first) {
			t.Fatalf("output changed between runs:\n%s\n---\n%s", first, again)
		}
	}
	if !strings.Contains(string(first), "[package]") {
		t.Errorf("output has no [package] table:\n%s", first)
	}
}

func TestMarshal_Form(t *testing.T) {
	out, err := Cargo("drive_v3").Marshal()
	if err != nil {
		t.Fatal(err)
	}
	want := `[dependencies]
mime = '0.3'
reqwest = '0.9'
serde_json = '1'
textnonce = '0.6'

[dependencies.chrono]
features = ['serde']
version = '0.4'

[dependencies.field_selector]
git = 'https://github.com/ggriffiniii/google-apis'

[dependencies.serde]
features = ['derive']
version = '1'

[package]
authors = ['Glenn Griffin <ggriffiniii@gmail.com']
edition = '2018'
name = 'drive_v3'
version = '0.1.0'
`
	if string(out) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", out, want)
	}
}

func TestMarshal_KeepsUnknownKeys(t *testing.T) {
	doc, err := Parse([]byte(`
[package]
name = "old"
version = "9.9.9"
license = "MIT"

[features]
default = ["rustls"]

[dependencies]
serde_json = "1"
`))
	if err != nil {
		t.Fatal(err)
	}
	doc.Package.Name = "new"
	doc.Package.Version = Version
	out, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := toml.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal(output) error = %v\n%s", err, out)
	}
	want := map[string]any{
		"package": map[string]any{
			"name":    "new",
			"version": Version,
			"license": "MIT",
		},
		"features":     map[string]any{"default": []any{"rustls"}},
		"dependencies": map[string]any{"serde_json": "1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("output = %v, want %v", got, want)
	}
}

func TestParse_Error(t *testing.T) {
	if _, err := Parse([]byte("[package\nname = ")); err == nil {
		t.Error("Parse() error = nil, want error")
	}
}
