package networth

import (
	"fmt"
	"log"
	"regexp"
	"slices"
	"strings"
)

// Assets is an ordered collection of assets, in display order.
//
// Assets is a value: operations that change the collection return a new one
// and never modify the receiver.
type Assets []Asset

var nonWord = regexp.MustCompile(`\W+`)

// Slugify derives the preferred slug for a label: lower case, with every run
// of non-word characters replaced by "-".
func Slugify(label string) string {
	return nonWord.ReplaceAllString(strings.ToLower(label), "-")
}

// Find returns the asset with this slug.
func (a Assets) Find(slug string) (Asset, bool) {
	i := a.index(slug)
	if i < 0 {
		return nil, false
	}
	return a[i], true
}

func (a Assets) index(slug string) int {
	return slices.IndexFunc(a, func(x Asset) bool { return x.Details().Slug == slug })
}

// uniqueSlug returns preferred if it is free, or the first free preferred-N.
func (a Assets) uniqueSlug(preferred string) string {
	slug := preferred
	for counter := 1; a.index(slug) >= 0; counter++ {
		slug = fmt.Sprintf("%s-%d", preferred, counter)
	}
	return slug
}

// NewSlug returns the slug a new asset labelled "New Asset" would get.
func (a Assets) NewSlug() string {
	return a.uniqueSlug("new-asset")
}

// Create appends details to the collection under a unique slug derived from its
// label, and returns the new collection with the created asset. The slug in
// details is ignored.
func (a Assets) Create(details Asset) (Assets, Asset) {
	created := details.withSlug(a.uniqueSlug(Slugify(details.Details().Label)))
	return append(slices.Clip(a), created), created
}

// Update replaces the asset identified by slug with details, keeping its slug.
// Every field is replaced, including the asset type.
//
// Updating an unknown slug is not an error: a warning is logged and the
// collection is returned unchanged with false.
func (a Assets) Update(slug string, details Asset) (Assets, bool) {
	i := a.index(slug)
	if i < 0 {
		log.Printf("warning: tried to update asset %q which doesn't exist", slug)
		return a, false
	}
	updated := slices.Clone(a)
	updated[i] = details.withSlug(slug)
	return updated, true
}

// Remove deletes the asset identified by slug. It follows the same lookup
// contract as Update.
func (a Assets) Remove(slug string) (Assets, bool) {
	i := a.index(slug)
	if i < 0 {
		log.Printf("warning: tried to remove asset %q which doesn't exist", slug)
		return a, false
	}
	return slices.Delete(slices.Clone(a), i, i+1), true
}

// Equal reports whether both collections hold equal assets in the same order.
func (a Assets) Equal(b Assets) bool {
	return slices.EqualFunc(a, b, Equal)
}
