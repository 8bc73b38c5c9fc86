// Command rsamatch matches RSA-encrypted plaintexts against ciphertexts.
//
// Usage:
//
//	rsamatch [flags] <input_file> <output_file>
package main

import (
	"os"

	"github.com/govalues/bignum/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.Match, os.Args[1:], os.Stdout, os.Stderr))
}
