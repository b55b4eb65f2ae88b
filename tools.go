//go:build tools
// +build tools

package rational

import (
	_ "golang.org/x/tools/cmd/stringer"
)
