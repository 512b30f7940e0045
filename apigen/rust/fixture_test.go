package rust

import "github.com/ggriffiniii/google-apis/apigen/desc"

// driveDescription is a small drive-like service with nested resources,
// global params, a request body and an enum param.
func driveDescription() *desc.ServiceDescription {
	return &desc.ServiceDescription{
		Name:        "drive",
		Version:     "v3",
		Title:       "Drive API",
		RootURL:     "https://www.googleapis.com/",
		ServicePath: "drive/v3/",
		GlobalParams: []desc.Param{
			{Identifier: "alt", Name: "alt", Description: "Data format for the response.", Type: desc.Enum("Alt", "json", "media")},
			{Identifier: "fields", Name: "fields", Description: "Selector specifying which fields to include.", Type: desc.String()},
			{Identifier: "pretty_print", Name: "prettyPrint", Type: desc.Bool()},
		},
		Resource: &desc.Resource{
			Identifier: "resources",
			Resources: []desc.Resource{
				{
					Identifier: "files",
					Methods: []desc.Method{
						{
							ID:          "get",
							Description: "Gets a file's metadata or content by ID.",
							HTTPMethod:  "GET",
							Path:        "files/{fileId}",
							Params: []desc.Param{
								{Identifier: "file_id", Name: "fileId", Description: "The ID of the file.", Required: true, Location: "path", Type: desc.String()},
								{Identifier: "acknowledge_abuse", Name: "acknowledgeAbuse", Location: "query", Type: desc.Bool()},
							},
						},
						{
							ID:          "list",
							Description: "Lists the user's files.",
							HTTPMethod:  "GET",
							Path:        "files",
							Params: []desc.Param{
								{Identifier: "corpora", Name: "corpora", Location: "query", Type: desc.Enum("Corpora", "user", "domain")},
								{Identifier: "page_size", Name: "pageSize", Location: "query", Type: desc.Int32()},
								{Identifier: "spaces", Name: "spaces", Location: "query", Type: desc.Array(desc.String())},
							},
						},
						{
							ID:          "insert-many",
							Description: "Creates files.",
							HTTPMethod:  "POST",
							Path:        "files",
							Request:     &desc.TypeRef{Name: "File"},
						},
					},
					Resources: []desc.Resource{
						{
							Identifier: "permissions",
							Methods: []desc.Method{
								{
									ID:         "list",
									HTTPMethod: "GET",
									Path:       "files/{fileId}/permissions",
									Params: []desc.Param{
										{Identifier: "file_id", Name: "fileId", Required: true, Location: "path", Type: desc.String()},
									},
								},
							},
						},
					},
				},
				{
					Identifier: "about",
					Methods: []desc.Method{
						{ID: "get", HTTPMethod: "GET", Path: "about"},
					},
				},
			},
		},
		Schemas: []desc.Schema{
			{
				Name:        "File",
				Description: "The metadata for a file.",
				Properties: []desc.SchemaProperty{
					{Name: "id", Type: desc.String()},
					{Name: "name", Type: desc.String()},
					{Name: "parents", Type: desc.Array(desc.String())},
					{Name: "size", Type: desc.Int64()},
					{Name: "owner", Ref: "User"},
				},
			},
			{
				Name: "User",
				Properties: []desc.SchemaProperty{
					{Name: "displayName", Type: desc.String()},
					{Name: "type", Type: desc.Enum("UserType", "user", "group")},
				},
			},
		},
	}
}

func testScope() scope {
	return newScope(driveDescription())
}
