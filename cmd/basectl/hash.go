package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/basekit/base/hashtable"
)

var (
	hashIgnoreCase bool
	hashAlgo       string
)

func init() {
	cmd := newHashCmd()
	cmd.Flags().BoolVarP(&hashIgnoreCase, "ignore-case", "i", false, "Hash case-insensitively")
	cmd.Flags().StringVar(&hashAlgo, "algo", "fnv", "Hash function: fnv, x65599 or bytes")
	rootCmd.AddCommand(cmd)
}

func newHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <string>...",
		Short: "Hash strings with the hashtable hash functions",
		Long: `The hash command prints the 32-bit hash of each argument using one of
the hashtable hash functions.

Example:
  basectl hash explorer.exe
  basectl hash --ignore-case Explorer.EXE
  basectl hash --algo x65599 svchost.exe --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
}

type hashResult struct {
	Input string `json:"input"`
	Hash  uint32 `json:"hash"`
}

func runHash(args []string) error {
	var fn func(string) uint32
	switch hashAlgo {
	case "fnv":
		fn = func(s string) uint32 { return hashtable.HashString(s, hashIgnoreCase) }
	case "x65599":
		fn = func(s string) uint32 { return hashtable.HashStringX65599(s, hashIgnoreCase) }
	case "bytes":
		fn = func(s string) uint32 { return hashtable.HashBytes([]byte(s)) }
	default:
		return fmt.Errorf("unknown hash function %q", hashAlgo)
	}

	results := make([]hashResult, 0, len(args))
	for _, a := range args {
		results = append(results, hashResult{Input: a, Hash: fn(a)})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%08x  %s\n", r.Hash, r.Input)
	}
	return nil
}
