package model

import "slices"

const (
	SectionName     = "name"
	SectionRevision = "revision"
)

// Category is a kind of bundle resource. Files of a category live in the bundle subdirectory of the same name.
type Category struct {
	Name       string
	Extensions []string
}

var categories = []Category{
	{Name: "material", Extensions: []string{"json"}},
	{Name: "geometry", Extensions: []string{"json"}},
	{Name: "mesh", Extensions: []string{"json", "js", "obj"}},
	{Name: "object", Extensions: []string{"json"}},
	{Name: "scene", Extensions: []string{"json"}},
	{Name: "shader", Extensions: []string{"json", "shader"}},
	{Name: "sound", Extensions: []string{"mp3", "ogg", "wav"}},
	{Name: "texture", Extensions: []string{"jpg", "jpeg", "bmp", "gif", "dds"}},
	{Name: "js", Extensions: []string{"js"}},
}

// Categories returns a copy of the known resource categories in their canonical order
func Categories() []Category {
	res := make([]Category, 0, len(categories))
	for _, c := range categories {
		res = append(res, Category{Name: c.Name, Extensions: slices.Clone(c.Extensions)})
	}
	return res
}

// CategoryNames returns the names of all known categories in canonical order
func CategoryNames() []string {
	res := make([]string, 0, len(categories))
	for _, c := range categories {
		res = append(res, c.Name)
	}
	return res
}

// LookupCategory finds a category by name
func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return Category{Name: c.Name, Extensions: slices.Clone(c.Extensions)}, true
		}
	}
	return Category{}, false
}

func IsCategory(name string) bool {
	_, ok := LookupCategory(name)
	return ok
}
