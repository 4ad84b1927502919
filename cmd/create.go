package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-leo/typefactory/furniture"
	"github.com/go-leo/typefactory/metrics"
)

// MaxCount bounds --count.
const MaxCount = 10000

// ErrCount --count is out of range
var ErrCount = errors.New("count must be between 1 and 10000")

type createResult struct {
	Anchor   string           `json:"anchor"`
	Product  string           `json:"product"`
	Concrete string           `json:"concrete"`
	Items    []string         `json:"items"`
	Metrics  []metrics.Sample `json:"metrics,omitempty"`
}

func newCreateCommand(flags *globalFlags) *cobra.Command {
	var anchor, product string
	var count int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create products with the factory of an anchor",
		Example: "  furniture create --anchor JapaneseSteelChair --product Table\n" +
			"  furniture create --anchor SpanishWoodenSofa --product Table --count 3 --json",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 || count > MaxCount {
				return fmt.Errorf("%w: %d", ErrCount, count)
			}
			e, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			return runCreate(cmd, e, anchor, product, count)
		},
	}
	createCmd.Flags().StringVarP(&anchor, "anchor", "a", "", "catalog name of the anchor type")
	createCmd.Flags().StringVarP(&product, "product", "p", "", "catalog name of the abstract product")
	createCmd.Flags().IntVarP(&count, "count", "n", 1, "number of products to create")
	_ = createCmd.MarkFlagRequired("anchor")
	_ = createCmd.MarkFlagRequired("product")
	return createCmd
}

func runCreate(cmd *cobra.Command, e *env, anchorName, productName string, count int) error {
	anchor, err := furniture.Lookup(anchorName)
	if err != nil {
		return err
	}
	product, err := furniture.Lookup(productName)
	if err != nil {
		return err
	}
	f, err := e.universe.ConcreteFactory(anchor)
	if err != nil {
		return err
	}

	res := createResult{Anchor: anchorName, Product: productName, Items: []string{}}
	for i := 0; i < count; i++ {
		v, err := f.Create(cmd.Context(), product)
		if err != nil {
			return err
		}
		line, err := furniture.Describe(v)
		if err != nil {
			return err
		}
		res.Concrete = furniture.Name(v)
		res.Items = append(res.Items, line)
	}
	e.log.Infof("created %d %s with the %s factory", count, productName, anchorName)

	if e.json {
		res.Metrics = e.snapshot()
		return e.printJSON(res)
	}
	for _, line := range res.Items {
		if _, err := fmt.Fprintln(e.out, line); err != nil {
			return err
		}
	}
	return e.printMetrics()
}
