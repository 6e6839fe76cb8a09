// Package entity contains the core business objects of the project.
//
// The storefront stores opaque documents: the service never imposes a
// schema beyond the few fields it inspects for control decisions, so the
// canonical entity is a free-form document with typed accessors for those
// fields.
package entity

// Field names the service inspects on stored documents.
const (
	// FieldEmail keys user accounts and profile information, and owns orders.
	FieldEmail = "email"
	// FieldRole is the account role flag. The stored field is literally
	// "roll", inherited from the storefront's data.
	FieldRole = "roll"

	// RoleAdmin is the role value that grants account administration.
	RoleAdmin = "admin"
)

// Document is an opaque storage document. Request bodies are stored
// verbatim and returned verbatim; the generated identity travels in the
// "_id" field.
type Document map[string]any

// StringField returns the named field when it holds a string, or "".
func (d Document) StringField(key string) string {
	if d == nil {
		return ""
	}
	value, _ := d[key].(string)

	return value
}

// Email returns the document's owner email, if present.
func (d Document) Email() string {
	return d.StringField(FieldEmail)
}

// IsAdmin reports whether the document's role flag marks an administrator.
// A nil document (no such account) is never an administrator.
func (d Document) IsAdmin() bool {
	return d.StringField(FieldRole) == RoleAdmin
}
