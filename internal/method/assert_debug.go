//go:build methoddebug

package method

import "fmt"

func assertNormalized(m *Method) {
	if Normalize(m) != m {
		panic(fmt.Sprintf("method: %q used before Normalize", m.String()))
	}
}
