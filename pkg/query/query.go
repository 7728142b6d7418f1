// Package query builds request paths for the panel API.
package query

import (
	"errors"
	"net/url"
	"strings"
)

const (
	applicationBase = "/api/application"
	clientBase      = "/api/client"
)

// ErrIDAndExternal is returned when a lookup names both an id and an external id.
var ErrIDAndExternal = errors.New("id and external flags specified; pick one")

// UserFilter selects users. ID and External address a single account, the
// remaining fields become filter parameters.
type UserFilter struct {
	ID       string
	External string
	Username string
	Email    string
	UUID     string
}

// Single reports whether the filter addresses exactly one account.
func (f UserFilter) Single() bool {
	return f.ID != "" || f.External != ""
}

// Users returns the path for a user lookup.
func Users(f UserFilter) (string, error) {
	var b strings.Builder
	b.WriteString(applicationBase + "/users")

	switch {
	case f.ID != "" && f.External != "":
		return "", ErrIDAndExternal
	case f.ID != "":
		b.WriteString("/" + url.PathEscape(f.ID))
	case f.External != "":
		b.WriteString("/external/" + url.PathEscape(f.External))
	}

	writeFilters(&b, []filter{
		{"username", f.Username},
		{"email", f.Email},
		{"uuid", f.UUID},
	})
	return b.String(), nil
}

// Servers returns the path for a server lookup by id or external id.
func Servers(id, external string) (string, error) {
	base := applicationBase + "/servers"
	switch {
	case id != "" && external != "":
		return "", ErrIDAndExternal
	case id != "":
		return base + "/" + url.PathEscape(id), nil
	case external != "":
		return base + "/external/" + url.PathEscape(external), nil
	}
	return base, nil
}

// Nodes returns the nodes collection path, or a single node when id is set.
func Nodes(id string) string {
	return collection(applicationBase+"/nodes", id)
}

// Locations returns the locations collection path, or a single location.
func Locations(id string) string {
	return collection(applicationBase+"/locations", id)
}

// Nests returns the nests collection path, or a single nest.
func Nests(id string) string {
	return collection(applicationBase+"/nests", id)
}

// Eggs returns the eggs of a nest, or a single egg when id is set.
func Eggs(nest, id string) string {
	return collection(applicationBase+"/nests/"+url.PathEscape(nest)+"/eggs", id)
}

// Account is the client API account path.
func Account() string {
	return clientBase + "/account"
}

// Permissions is the client API permissions path.
func Permissions() string {
	return clientBase + "/permissions"
}

// ClientServers returns the servers visible to the client key, or one of
// them by identifier.
func ClientServers(identifier string) string {
	if identifier == "" {
		return clientBase
	}
	return clientBase + "/servers/" + url.PathEscape(identifier)
}

type filter struct {
	name  string
	value string
}

func writeFilters(b *strings.Builder, filters []filter) {
	sep := "?"
	for _, f := range filters {
		if f.value == "" {
			continue
		}
		b.WriteString(sep + "filter[" + f.name + "]=" + url.QueryEscape(f.value))
		sep = "&"
	}
}

func collection(base, id string) string {
	if id == "" {
		return base
	}
	return base + "/" + url.PathEscape(id)
}
