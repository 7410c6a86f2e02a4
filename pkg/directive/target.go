package directive

import (
	"cmp"
	"fmt"
	"reflect"
)

const accessorParam = -1

// Target identifies where directives are attached: a property of an owner
// type, or one parameter of a method or function.
type Target struct {
	Owner  string
	Member string
	// Param is the zero-based parameter index, or -1 for a property.
	Param int
}

// AccessorTarget names the property member of owner.
func AccessorTarget(owner, member string) Target {
	return Target{Owner: owner, Member: member, Param: accessorParam}
}

// ParamTarget names parameter index of method on owner. Free functions use
// any owner string, including "".
func ParamTarget(owner, method string, index int) Target {
	return Target{Owner: owner, Member: method, Param: index}
}

// IsAccessor reports whether t names a property.
func (t Target) IsAccessor() bool {
	return t.Param == accessorParam
}

func (t Target) String() string {
	name := t.Member
	if t.Owner != "" {
		name = t.Owner + "." + t.Member
	}
	if t.IsAccessor() {
		return name
	}
	return fmt.Sprintf("%s[#%d]", name, t.Param)
}

func compareTargets(a, b Target) int {
	return cmp.Or(
		cmp.Compare(a.Owner, b.Owner),
		cmp.Compare(a.Member, b.Member),
		cmp.Compare(a.Param, b.Param),
	)
}

// OwnerOf returns the owner name used for targets on R. Pointer receivers
// and value receivers share one name.
func OwnerOf[R any]() string {
	t := reflect.TypeFor[R]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}
