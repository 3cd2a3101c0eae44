package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuapare/basekit/base"
	"github.com/joshuapare/basekit/base/object"
)

func init() {
	rootCmd.AddCommand(newTypesCmd())
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Show the built-in object type table",
		Long: `The types command initializes a runtime, creates one of each built-in
container so its type is registered, and prints the resulting type table.

Example:
  basectl types
  basectl types --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes()
		},
	}
}

func runTypes() error {
	rt, err := newRuntime(base.DefaultConfig())
	if err != nil {
		return err
	}
	defer rt.Close()

	var pool object.AutoPool
	list, err := base.CreateList[string](rt, 4)
	if err != nil {
		return err
	}
	object.Auto(&pool, list)
	pl, err := base.CreatePointerList[string](rt, 4)
	if err != nil {
		return err
	}
	object.Auto(&pool, pl)
	q, err := base.CreateQueue[string](rt, 4)
	if err != nil {
		return err
	}
	object.Auto(&pool, q)
	defer pool.Drain()

	return printTypes(rt.Registry().Types())
}

func printTypes(infos []object.TypeInfo) error {
	if jsonOut {
		return printJSON(infos)
	}
	if quiet {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGO TYPE\tFREE LIST\tLIVE\tCREATED")
	for _, info := range infos {
		fl := "-"
		if info.Flags&object.UseFreeList != 0 {
			fl = fmt.Sprint(info.FreeListCount)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
			info.ID, info.Name, info.GoType, fl, info.NumberOfObjects, info.TotalCreated)
	}
	return w.Flush()
}
