package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/creational/builder"
)

type recipe struct {
	name  string
	build func(builder.Builder)
}

func newBuilderCmd(a *app) *cobra.Command {
	var which string

	cmd := &cobra.Command{
		Use:   "builder",
		Short: "Run the Director recipes against a recording builder",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var d builder.Director
			recipes := []recipe{
				{name: "A", build: d.BuildTypeA},
				{name: "B", build: d.BuildTypeB},
				{name: "C", build: d.BuildTypeC},
			}

			selected := strings.ToUpper(which)
			if selected != "ALL" {
				recipes = lo.Filter(recipes, func(r recipe, _ int) bool { return r.name == selected })
			}
			if len(recipes) == 0 {
				return usageError{err: fmt.Errorf("unknown recipe %q (want a, b, c or all)", which)}
			}

			for _, r := range recipes {
				rec := builder.NewRecorder()
				r.build(builder.NewLoggingBuilder(rec, a.logger.With(zap.String("recipe", r.name))))

				names := lo.Map(rec.Steps(), func(s builder.Step, _ int) string { return s.String() })
				fmt.Fprintf(a.stdout, "type %s: %s\n", r.name, strings.Join(names, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&which, "recipe", "all", "recipe to run (a, b, c or all)")
	return cmd
}
