package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// typeNamespace seeds deterministic type GUIDs.
var typeNamespace = uuid.MustParse("6f1c3e9a-2b7d-4c55-9a0e-8d3f4b1a7c20")

var hierarchy = struct {
	sync.RWMutex
	super  map[string]string
	byGUID map[string]string
}{
	super:  map[string]string{},
	byGUID: map[string]string{},
}

func init() {
	builtin := []struct{ name, super string }{
		{TypeReferenceable, ""},
		{TypeAsset, TypeReferenceable},
		{TypeDataSet, TypeAsset},
		{TypeDataFile, TypeDataSet},
		{TypeDatabase, TypeDataSet},
		{TypeSchemaElement, TypeReferenceable},
		{TypeSchemaType, TypeSchemaElement},
		{TypeComplexSchemaType, TypeSchemaType},
		{TypeTabularSchemaType, TypeComplexSchemaType},
		{TypeSchemaAttribute, TypeSchemaElement},
		{TypeTabularColumn, TypeSchemaAttribute},
	}
	for _, t := range builtin {
		if err := RegisterType(t.name, t.super); err != nil {
			panic(err)
		}
	}
}

// TypeGUID returns the deterministic GUID of a type name.
func TypeGUID(name string) string {
	return uuid.NewSHA1(typeNamespace, []byte(name)).String()
}

// RegisterType adds name as a subtype of super. Only Referenceable has no supertype.
// Registering an existing type with the same supertype is a no-op.
func RegisterType(name, super string) error {
	hierarchy.Lock()
	defer hierarchy.Unlock()

	if name == "" {
		return fmt.Errorf("type name is empty")
	}
	if existing, ok := hierarchy.super[name]; ok {
		if existing != super {
			return fmt.Errorf("type %s already registered under %s", name, existing)
		}
		return nil
	}
	if name != TypeReferenceable {
		if _, ok := hierarchy.super[super]; !ok {
			return fmt.Errorf("unknown supertype %q for %s", super, name)
		}
	}

	hierarchy.super[name] = super
	hierarchy.byGUID[TypeGUID(name)] = name
	return nil
}

// KnownType reports whether name is registered.
func KnownType(name string) bool {
	hierarchy.RLock()
	defer hierarchy.RUnlock()
	_, ok := hierarchy.super[name]
	return ok
}

// TypeNameByGUID returns the type registered under guid.
func TypeNameByGUID(guid string) (string, bool) {
	hierarchy.RLock()
	defer hierarchy.RUnlock()
	name, ok := hierarchy.byGUID[guid]
	return name, ok
}

// IsA reports whether name equals ancestor or descends from it.
func IsA(name, ancestor string) bool {
	hierarchy.RLock()
	defer hierarchy.RUnlock()
	return isA(name, ancestor)
}

func isA(name, ancestor string) bool {
	for cur := name; cur != ""; cur = hierarchy.super[cur] {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// SubtypesOf returns ancestor and every registered descendant, sorted.
// An unregistered ancestor yields just itself.
func SubtypesOf(ancestor string) []string {
	hierarchy.RLock()
	defer hierarchy.RUnlock()

	out := []string{ancestor}
	for name := range hierarchy.super {
		if name != ancestor && isA(name, ancestor) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
