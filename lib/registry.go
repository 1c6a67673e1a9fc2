package lib

import "strings"

var registry Functions = make(Functions, 0)

// Functions is the list of applets the multi-call binary can dispatch to.
type Functions []string

func (f Functions) String() string {
	builder := strings.Builder{}
	for i, fn := range f {
		if i != 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fn)
	}
	return builder.String()
}

func (f Functions) Has(function string) bool {
	for _, fn := range f {
		if fn == function {
			return true
		}
	}
	return false
}

func RegisterFunction(function string) {
	if registry.Has(function) {
		return
	}
	registry = append(registry, function)
}

// RegisteredFunctions returns a copy of the registered functions
func RegisteredFunctions() Functions {
	return append(Functions(nil), registry...)
}
