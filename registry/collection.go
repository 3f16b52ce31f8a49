package registry

import "sync"

// The global registration collection. Every generated file contributes one
// entry per command during package variable initialization; no package ever
// references a shared list. Order of registration is irrelevant.
var (
	collectionMu sync.Mutex
	collection   []RegistrationDescriptor
)

// Register appends a descriptor to the global registration collection and
// returns a zero-size token so generated code can register from a package
// variable whose name encodes (category, action):
//
//	var _declgen_user_create = registry.Register(registry.RegistrationDescriptor{...})
//
// Two declarations resolving to the same pair therefore collide at compile
// time inside one package; cross-package duplicates are caught when the
// registry is built.
func Register(desc RegistrationDescriptor) struct{} {
	collectionMu.Lock()
	defer collectionMu.Unlock()
	collection = append(collection, desc)
	return struct{}{}
}

// snapshot copies the collection for registry construction.
func snapshot() []RegistrationDescriptor {
	collectionMu.Lock()
	defer collectionMu.Unlock()
	out := make([]RegistrationDescriptor, len(collection))
	copy(out, collection)
	return out
}
