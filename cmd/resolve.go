package cmd

import (
	"fmt"
	"strings"

	"github.com/evranch/atlas"
)

// findFriend resolves a command-line argument to a friend, by id first, then
// by case-insensitive name. An ambiguous name is an error listing the
// candidates so the user can retry with an id.
func findFriend(store *atlas.Store[atlas.Friend], key string) (atlas.Friend, error) {
	if f, ok := store.Find(key); ok {
		return f, nil
	}
	var matches []atlas.Friend
	for f := range store.All() {
		if strings.EqualFold(f.Name, key) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return atlas.Friend{}, fmt.Errorf("no friend matches %q", key)
	case 1:
		return matches[0], nil
	}
	var ids []string
	for _, f := range matches {
		ids = append(ids, fmt.Sprintf("%s (%s, %s)", f.ID, f.Name, f.Location))
	}
	return atlas.Friend{}, fmt.Errorf("%q is ambiguous, use an id: %s", key, strings.Join(ids, "; "))
}

// findProperty resolves an argument to a property the same way.
func findProperty(store *atlas.Store[atlas.Property], key string) (atlas.Property, error) {
	if p, ok := store.Find(key); ok {
		return p, nil
	}
	var matches []atlas.Property
	for p := range store.All() {
		if strings.EqualFold(p.Name, key) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 0:
		return atlas.Property{}, fmt.Errorf("no property matches %q", key)
	case 1:
		return matches[0], nil
	}
	var ids []string
	for _, p := range matches {
		ids = append(ids, fmt.Sprintf("%s (%s, %s)", p.ID, p.Name, p.Location))
	}
	return atlas.Property{}, fmt.Errorf("%q is ambiguous, use an id: %s", key, strings.Join(ids, "; "))
}
