package domain

import (
	"encoding/json"
	"time"
)

type CategoryType string

const (
	CategoryTypeEvent  CategoryType = "event"
	CategoryTypeSports CategoryType = "sports"
)

func (t CategoryType) IsValid() bool {
	return t == CategoryTypeEvent || t == CategoryTypeSports
}

type Category struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        CategoryType `json:"type"`
	CreatedAt   time.Time    `json:"created_at"`
}

// UnknownCategoryName is returned when a category reference cannot be
// resolved against the known categories.
const UnknownCategoryName = "N/A"

type refKind uint8

const (
	refNone refKind = iota
	refRaw          // string reference, name or id, classified at resolve time
	refByName
	refByID
	refEmbedded
)

// CategoryRef is the polymorphic category reference the upstream data
// uses: a plain name string, a raw id, or an embedded category object.
type CategoryRef struct {
	kind     refKind
	value    string
	embedded Category
}

func CategoryByName(name string) CategoryRef {
	return CategoryRef{kind: refByName, value: name}
}

func CategoryByID(id string) CategoryRef {
	return CategoryRef{kind: refByID, value: id}
}

func CategoryEmbedded(c Category) CategoryRef {
	return CategoryRef{kind: refEmbedded, embedded: c}
}

// CategoryRaw wraps a string reference whose form (name or id) is
// unknown until resolved.
func CategoryRaw(ref string) CategoryRef {
	if ref == "" {
		return CategoryRef{}
	}
	return CategoryRef{kind: refRaw, value: ref}
}

// IsZero reports whether the reference is absent.
func (r CategoryRef) IsZero() bool {
	return r.kind == refNone
}

// Raw returns the string form of the reference for persistence: the
// embedded category's name, or the raw name/id value.
func (r CategoryRef) Raw() string {
	if r.kind == refEmbedded {
		return r.embedded.Name
	}
	return r.value
}

func (r *CategoryRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = CategoryRaw(s)
		return nil
	}

	var c Category
	if err := json.Unmarshal(b, &c); err == nil {
		*r = CategoryEmbedded(c)
		return nil
	}

	// Unrecognized shape degrades to an absent reference rather than
	// failing the whole record.
	*r = CategoryRef{}
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.kind == refEmbedded {
		return json.Marshal(r.embedded)
	}
	return json.Marshal(r.value)
}

// ResolveCategoryName resolves a polymorphic category reference to a
// display name against the known categories, falling back to "N/A".
func ResolveCategoryName(ref CategoryRef, known []Category) string {
	switch ref.kind {
	case refEmbedded:
		if ref.embedded.Name == "" {
			return UnknownCategoryName
		}
		return ref.embedded.Name

	case refByName:
		for _, c := range known {
			if c.Name == ref.value {
				return ref.value
			}
		}
		return UnknownCategoryName

	case refByID:
		for _, c := range known {
			if c.ID == ref.value {
				return c.Name
			}
		}
		return UnknownCategoryName

	case refRaw:
		for _, c := range known {
			if c.Name == ref.value {
				return ref.value
			}
		}
		for _, c := range known {
			if c.ID == ref.value {
				return c.Name
			}
		}
		return UnknownCategoryName
	}

	return UnknownCategoryName
}
