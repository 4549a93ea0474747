package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/Lenostatos/Orinoco-2/internal/catalog"
	"github.com/Lenostatos/Orinoco-2/internal/ctyval"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"
)

func (c *command) newFunctionsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "functions",
		Short: "List catalog functions in definition order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			fns := a.Catalog().ListFunctions()
			if category != "" {
				cat, ok := a.Catalog().FindCategory(category)
				if !ok {
					return usageError(fmt.Errorf("unknown category '%s'", category))
				}
				fns = cat.Functions
			}

			tw := tabwriter.NewWriter(c.outW, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAMES\tINPUTS\tOUTPUT")
			for _, d := range fns {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, strings.Join(d.Names, ", "), signature(d), d.Output.Type)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only list the functions of this category id.")
	return cmd
}

func (c *command) newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List function categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			tw := tabwriter.NewWriter(c.outW, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tFUNCTIONS")
			for _, cat := range a.Catalog().ListCategories() {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", cat.ID, cat.Name, len(cat.Functions))
			}
			return tw.Flush()
		},
	}
}

func (c *command) newDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Show the signature of a function, looked up by alias or id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			d, err := a.Catalog().Resolve(args[0])
			if err != nil {
				return failure(err)
			}

			fmt.Fprintf(c.outW, "%s (%s)\n", d.ID, strings.Join(d.Names, ", "))
			if d.Description != "" {
				fmt.Fprintf(c.outW, "  %s\n", d.Description)
			}
			fmt.Fprintln(c.outW, "Inputs:")
			if len(d.Inputs) == 0 {
				fmt.Fprintln(c.outW, "  (none)")
			}
			for _, in := range d.Inputs {
				ty := string(in.Type)
				if in.ArrayInput {
					ty = "[]" + ty
				}
				fmt.Fprintf(c.outW, "  %s: %s", in.Name, ty)
				if in.Description != "" {
					fmt.Fprintf(c.outW, " - %s", in.Description)
				}
				fmt.Fprintln(c.outW)
			}
			fmt.Fprintf(c.outW, "Output: %s", d.Output.Type)
			if d.Output.Description != "" {
				fmt.Fprintf(c.outW, " - %s", d.Output.Description)
			}
			fmt.Fprintln(c.outW)
			return nil
		},
	}
}

func (c *command) newCallCommand() *cobra.Command {
	var jsonArgs bool

	cmd := &cobra.Command{
		Use:   "call NAME [ARGS...]",
		Short: "Call a function with the given arguments",
		Long: `Call a function by alias or id. Arguments are passed as strings and
coerced to the declared input types; with --json-args each argument is
parsed as a JSON literal instead. Use "--" before negative numbers.`,
		Example: `  orinoco call SUM 1 2 3
  orinoco call --json-args IF true '"yes"' '"no"'
  orinoco call -- - 5 -2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args[1:], jsonArgs)
			if err != nil {
				return usageError(err)
			}

			a, err := c.newApp()
			if err != nil {
				return err
			}
			defer a.Close(cmd.Context())

			res, err := a.Catalog().InvokeByName(a.Context(), args[0], values)
			if err != nil {
				return failure(err)
			}
			fmt.Fprintln(c.outW, ctyval.Display(res.Value))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonArgs, "json-args", false, "Parse every argument as a JSON literal.")
	return cmd
}

func (c *command) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog and the canvas state over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			serveErr := a.Serve(ctx)
			if err := a.Close(context.Background()); err != nil && serveErr == nil {
				serveErr = err
			}
			if serveErr != nil {
				return failure(serveErr)
			}
			return nil
		},
	}
	cmd.Flags().Int("port", 8080, "Port for the HTTP API.")
	_ = c.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	return cmd
}

func parseArgs(raw []string, asJSON bool) ([]cty.Value, error) {
	values := make([]cty.Value, len(raw))
	for i, s := range raw {
		if !asJSON {
			values[i] = cty.StringVal(s)
			continue
		}
		v, err := ctyval.ParseJSON([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

func signature(d *catalog.Descriptor) string {
	parts := make([]string, len(d.Inputs))
	for i, in := range d.Inputs {
		if in.ArrayInput {
			parts[i] = in.Name + " []" + string(in.Type)
			continue
		}
		parts[i] = in.Name + " " + string(in.Type)
	}
	return strings.Join(parts, ", ")
}
