package rbac

import (
	"sort"
	"strings"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
	Wildcard    = "*"
)

var Resources = []string{
	"admins", "roles", "users", "bonuses", "cashback", "tiers", "promotions", "banners",
	"apikeys", "races", "trivia", "transactions", "utm", "uploads", "dashboard", "logs",
}

func Permission(resource, action string) string {
	return resource + ":" + action
}

// Catalog lists every grantable permission, wildcard first.
func Catalog() []string {
	perms := []string{Wildcard}
	for _, r := range Resources {
		perms = append(perms, Permission(r, ActionRead), Permission(r, ActionWrite))
	}
	return perms
}

func IsKnown(permission string) bool {
	if permission == Wildcard {
		return true
	}
	resource, action, ok := strings.Cut(permission, ":")
	if !ok || (action != ActionRead && action != ActionWrite) {
		return false
	}
	i := sort.SearchStrings(sortedResources, resource)
	return i < len(sortedResources) && sortedResources[i] == resource
}

// Unknown returns the entries of perms missing from the catalog.
func Unknown(perms []string) []string {
	var out []string
	for _, p := range perms {
		if !IsKnown(p) {
			out = append(out, p)
		}
	}
	return out
}

var sortedResources = func() []string {
	s := append([]string(nil), Resources...)
	sort.Strings(s)
	return s
}()
