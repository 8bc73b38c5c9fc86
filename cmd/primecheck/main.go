// Command primecheck tests a hexadecimal number for primality.
//
// Usage:
//
//	primecheck [flags] <input_file> <output_file>
package main

import (
	"os"

	"github.com/govalues/bignum/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.Primality, os.Args[1:], os.Stdout, os.Stderr))
}
