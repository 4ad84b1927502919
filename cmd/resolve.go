package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type resolution struct {
	Anchor   string            `json:"anchor"`
	Products map[string]string `json:"products"`
}

func newResolveCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the concrete type every anchor's factory builds for every product",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return runResolve(e)
		},
	}
}

func runResolve(e *env) error {
	products := e.universe.Root().Types()
	var matrix []resolution
	for _, anchor := range e.universe.Anchors().Types() {
		r := resolution{Anchor: anchor.Name(), Products: make(map[string]string, len(products))}
		for _, product := range products {
			concrete, err := e.universe.Resolve(anchor, product)
			if err != nil {
				return err
			}
			r.Products[product.Name()] = concrete.Name()
		}
		matrix = append(matrix, r)
	}

	if e.json {
		return e.printJSON(matrix)
	}
	for _, r := range matrix {
		cells := make([]string, 0, len(products))
		for _, product := range products {
			cells = append(cells, product.Name()+"="+r.Products[product.Name()])
		}
		if _, err := fmt.Fprintf(e.out, "%s: %s\n", r.Anchor, strings.Join(cells, " ")); err != nil {
			return err
		}
	}
	return nil
}
