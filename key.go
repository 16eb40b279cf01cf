package emitter

// Key is an opaque identity token naming a registration. Keys compare
// by identity, never by structure: two keys match only if one was
// copied from the other. Registering without WithKey mints a fresh
// key, so two otherwise identical handlers always unregister
// independently.
type Key struct {
	tok *keyToken
}

type keyToken struct {
	label string
}

// NewKey mints a unique key. The label is for debugging only and
// plays no part in identity.
func NewKey(label string) Key {
	return Key{tok: &keyToken{label: label}}
}

// IsZero reports whether k is the zero key (no identity).
func (k Key) IsZero() bool {
	return k.tok == nil
}

// String returns the key's debug label.
func (k Key) String() string {
	if k.tok == nil {
		return "<zero key>"
	}
	if k.tok.label == "" {
		return "<anonymous key>"
	}
	return k.tok.label
}
