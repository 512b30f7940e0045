package discovery

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/cockroachdb/errors"
)

// DirectoryQuery filters a directory listing.
type DirectoryQuery struct {
	// Name restricts the listing to one API.
	Name string `url:"name,omitempty"`

	// Preferred lists only the preferred version of each API.
	Preferred bool `url:"preferred,omitempty"`
}

// DirectoryItem is one API version in the directory.
type DirectoryItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Version          string `json:"version"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DiscoveryRestURL string `json:"discoveryRestUrl"`
	Preferred        bool   `json:"preferred"`
}

type directoryList struct {
	Kind  string          `json:"kind"`
	Items []DirectoryItem `json:"items"`
}

// ListDirectory lists the APIs in the directory matching q.
func (c *Client) ListDirectory(ctx context.Context, q DirectoryQuery) ([]DirectoryItem, error) {
	u, err := url.Parse(c.directoryURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse directory url")
	}
	values := u.Query()
	if err := c.encoder.Encode(q, values); err != nil {
		return nil, errors.Wrap(err, "encode directory query")
	}
	u.RawQuery = values.Encode()

	data, err := c.get(ctx, u.String())
	if err != nil {
		return nil, err
	}
	var list directoryList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Wrap(err, "decode directory")
	}
	return list.Items, nil
}

// Lookup returns the directory entry for one API version.
func (c *Client) Lookup(ctx context.Context, name, version string) (DirectoryItem, error) {
	items, err := c.ListDirectory(ctx, DirectoryQuery{Name: name})
	if err != nil {
		return DirectoryItem{}, err
	}
	for _, item := range items {
		if item.Name == name && item.Version == version {
			if item.DiscoveryRestURL == "" {
				return DirectoryItem{}, errors.Newf("directory entry %s:%s has no discovery URL", name, version)
			}
			return item, nil
		}
	}
	return DirectoryItem{}, errors.WithHintf(errors.Newf("api %s:%s not found in directory", name, version),
		"run `google-apis-gen list --name %s` to see available versions", name)
}
