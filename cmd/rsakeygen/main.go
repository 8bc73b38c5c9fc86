// Command rsakeygen derives an RSA private exponent from P, Q and E.
//
// Usage:
//
//	rsakeygen [flags] <input_file> <output_file>
package main

import (
	"os"

	"github.com/govalues/bignum/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.KeyGen, os.Args[1:], os.Stdout, os.Stderr))
}
