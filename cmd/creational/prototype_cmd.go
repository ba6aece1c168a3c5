package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/creational/config"
	"github.com/sghaida/creational/prototype"
)

func newPrototypeCmd(a *app) *cobra.Command {
	var (
		year   int
		color  string
		title  string
		clones int
	)

	cmd := &cobra.Command{
		Use:   "prototype",
		Short: "Clone cars from a factory and libraries from one expensive source",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if clones < 0 {
				return usageError{err: fmt.Errorf("--clones must be >= 0, got %d", clones)}
			}

			proto := prototype.NewCar(year, color)
			factory := prototype.NewCarFactory(proto)
			for i := 0; i < clones; i++ {
				car := factory.CreateCar()
				fmt.Fprintf(a.stdout, "car %d: year=%d color=%s prototype=%t\n", i+1, car.Year, car.Color, car == proto)
			}

			a.logger.Info("building library", zap.String("title", title), zap.Duration("delay", a.cfg.LibraryDelay))
			src := prototype.NewLibrary(title, prototype.WithDelay(a.cfg.LibraryDelay))
			fmt.Fprintf(a.stdout, "library %q: %d books\n", src.Title, len(src.BooksList))

			for i := 0; i < clones; i++ {
				cp := src.Clone(fmt.Sprintf("%s #%d", title, i+1))
				shared := len(cp.BooksList) > 0 && &cp.BooksList[0] == &src.BooksList[0]
				fmt.Fprintf(a.stdout, "library %q: %d books shared=%t\n", cp.Title, len(cp.BooksList), shared)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 2020, "prototype car year")
	cmd.Flags().StringVar(&color, "color", "Red", "prototype car color")
	cmd.Flags().StringVar(&title, "title", "Central", "title of the expensive source library")
	cmd.Flags().IntVar(&clones, "clones", 3, "number of clones to make of each prototype")
	cmd.Flags().String("library-delay", "3s", "how long building the source library blocks")
	a.bind(config.KeyLibraryDelay, cmd.Flags().Lookup("library-delay"))

	return cmd
}
