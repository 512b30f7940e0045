package naming

import (
	"reflect"
	"testing"
)

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"type", "type_"},
		{"fn", "fn_"},
		{"self", "self_"},
		{"Self", "Self_"},
		{"match", "match_"},
		{"file_id", "file_id"},
		{"Files", "Files"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeReservedWord(tt.input)
			if got != tt.want {
				t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVarName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"$.", ""},
		{"fileId", "file_id"},
		{"pageToken", "page_token"},
		{"maxResults", "max_results"},
		{"files", "files"},
		{"emptyTrash", "empty_trash"},
		{"insert-many", "insert_many"},
		{"batch.get", "batch_get"},
		{"upload_protocol", "upload_protocol"},
		{"$.xgafv", "xgafv"},
		{"fileID", "file_id"},
		{"type", "type_"},
		{"Type", "type_"},
		{"self", "self_"},
		{"a  b", "a_b"},
		{"trailing-", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := VarName(tt.input)
			if got != tt.want {
				t.Errorf("VarName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVarName_LeadingDigit(t *testing.T) {
	got := VarName("123abc")
	if got == "" || got[0] != '_' {
		t.Errorf("VarName(%q) = %q, want a leading underscore", "123abc", got)
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"get", "Get"},
		{"files", "Files"},
		{"permissions", "Permissions"},
		{"file_id", "FileId"},
		{"fileId", "FileId"},
		{"insert-many", "InsertMany"},
		{"emptyTrash", "EmptyTrash"},
		{"$.xgafv", "Xgafv"},
		{"self", "Self_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := TypeName(tt.input)
			if got != tt.want {
				t.Errorf("TypeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTypeName_LeadingDigit(t *testing.T) {
	got := TypeName("2fa")
	if got == "" || got[0] != 'T' {
		t.Errorf("TypeName(%q) = %q, want a leading T", "2fa", got)
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"fileId", "$.xgafv", "type", "insert-many", "v1beta", "123abc",
		"ETag", "includeItemsFromAllDrives", "a.b-c_d e", "Self",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v := VarName(in)
			if again := VarName(v); again != v {
				t.Errorf("VarName(VarName(%q)) = %q, want %q", in, again, v)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if got := BuilderName("get"); got != "GetMethodBuilder" {
		t.Errorf("BuilderName(get) = %q", got)
	}
	if got := BuilderName("emptyTrash"); got != "EmptyTrashMethodBuilder" {
		t.Errorf("BuilderName(emptyTrash) = %q", got)
	}
	if got := ActionName("permissions"); got != "PermissionsAction" {
		t.Errorf("ActionName(permissions) = %q", got)
	}
	if got := FieldName("request"); got != "request_" {
		t.Errorf("FieldName(request) = %q", got)
	}
	if got := FieldName("reqwest"); got != "reqwest_" {
		t.Errorf("FieldName(reqwest) = %q", got)
	}
	if got := FieldName("fileId"); got != "file_id" {
		t.Errorf("FieldName(fileId) = %q", got)
	}
	if got := ModuleName("params"); got != "params_" {
		t.Errorf("ModuleName(params) = %q", got)
	}
	if got := VariantName("*"); got != "Value" {
		t.Errorf("VariantName(*) = %q", got)
	}
	if got := VariantName("media"); got != "Media" {
		t.Errorf("VariantName(media) = %q", got)
	}
}

func TestDocLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Gets a file.", []string{"Gets a file."}},
		{"trailing space", "Gets a file.  \n", []string{"Gets a file."}},
		{"crlf", "one\r\ntwo", []string{"one", "two"}},
		{"interior blank", "\none\n\ntwo\n\n", []string{"one", "", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DocLines(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DocLines(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{"files/{fileId}", `"files/{fileId}"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := StringLiteral(tt.input)
			if got != tt.want {
				t.Errorf("StringLiteral(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
