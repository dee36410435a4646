package decode

import "testing"

func TestKeyTableResolvesDefaultID(t *testing.T) {
	kt := newKeyTable()
	k, ok := kt.resolve("d_vertex")
	if !ok || k != keyVertex {
		t.Errorf("resolve(d_vertex) = (%v, %v), want (keyVertex, true)", k, ok)
	}
}

func TestKeyTableResolveUnknownIDFails(t *testing.T) {
	kt := newKeyTable()
	if _, ok := kt.resolve("not-a-key"); ok {
		t.Error("expected an undeclared id to not resolve")
	}
}

func TestKeyTableDeclareOverridesDefault(t *testing.T) {
	kt := newKeyTable()
	kt.declare("custom_vertex", "vertex")

	if _, ok := kt.resolve("d_vertex"); ok {
		t.Error("the default id should no longer resolve once overridden")
	}
	k, ok := kt.resolve("custom_vertex")
	if !ok || k != keyVertex {
		t.Errorf("resolve(custom_vertex) = (%v, %v), want (keyVertex, true)", k, ok)
	}
}

func TestKeyTableDeclareIgnoresUnknownAttrName(t *testing.T) {
	kt := newKeyTable()
	kt.declare("whatever", "someExtensionAttribute")

	if _, ok := kt.resolve("whatever"); ok {
		t.Error("an unrecognized attr.name should not be registered")
	}
	if _, ok := kt.resolve("d_vertex"); !ok {
		t.Error("declaring an unknown key should not disturb existing defaults")
	}
}
