package list

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggriffiniii/google-apis/cmd/google-apis-gen/internal/cli"
)

func TestList(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"items":[
			{"name":"drive","version":"v2","title":"Drive API"},
			{"name":"drive","version":"v3","title":"Drive API","preferred":true}]}`))
	}))
	defer srv.Close()

	var stdout bytes.Buffer
	g := &cli.Globals{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	require.NoError(t, (&Cmd{Name: "drive", Directory: srv.URL}).Run(context.Background(), g))

	assert.Equal(t, "name=drive", query)
	assert.Equal(t, ""+
		"API       TITLE      PREFERRED\n"+
		"drive:v2  Drive API  \n"+
		"drive:v3  Drive API  yes\n", stdout.String())
}

func TestList_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	g := &cli.Globals{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := (&Cmd{Name: "nope", Preferred: true, Directory: srv.URL}).Run(context.Background(), g)
	assert.ErrorContains(t, err, "no APIs match")
}
