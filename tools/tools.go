//go:build tools

package tools

import (
	_ "github.com/matryer/moq"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
