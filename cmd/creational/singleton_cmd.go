package main

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sghaida/creational/config"
	"github.com/sghaida/creational/singleton"
)

// serialer is implemented by every process-wide singleton type.
type serialer interface {
	Serial() uint64
}

func newSingletonCmd(a *app) *cobra.Command {
	var raceNaive bool

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Race goroutines for each singleton variant and count the instances they see",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.cfg.Accessors

			var naive []serialer
			if raceNaive {
				a.logger.Warn("racing the naive singleton; more than one instance may be built")
				got, err := concurrent(cmd.Context(), n, singleton.GetInstance)
				if err != nil {
					return err
				}
				naive = got
			} else {
				naive = sequential(n, singleton.GetInstance)
			}
			a.report("naive", naive)

			checked, err := concurrent(cmd.Context(), n, singleton.DoubleCheckedInstance)
			if err != nil {
				return err
			}
			a.report("double-checked", checked)

			lazy, err := concurrent(cmd.Context(), n, singleton.LazyInstance)
			if err != nil {
				return err
			}
			a.report("lazy", lazy)
			return nil
		},
	}

	cmd.Flags().Int("accessors", 8, "goroutines racing for each singleton")
	cmd.Flags().BoolVar(&raceNaive, "race-naive", false, "access the naive singleton concurrently too (unsafe)")
	a.bind(config.KeyAccessors, cmd.Flags().Lookup("accessors"))

	return cmd
}

func (a *app) report(variant string, got []serialer) {
	instances := len(lo.Uniq(got))
	serials := lo.Uniq(lo.Map(got, func(s serialer, _ int) uint64 { return s.Serial() }))

	a.logger.Debug("singleton accessed",
		zap.String("variant", variant),
		zap.Int("accessors", len(got)),
		zap.Int("instances", instances),
	)
	fmt.Fprintf(a.stdout, "%s: accessors=%d instances=%d serials=%v\n", variant, len(got), instances, serials)
}

func sequential[T serialer](n int, get func() T) []serialer {
	out := make([]serialer, n)
	for i := range out {
		out[i] = get()
	}
	return out
}

// concurrent releases n goroutines at once against get. Goroutines that
// have not been released yet give up if ctx is cancelled.
func concurrent[T serialer](ctx context.Context, n int, get func() T) ([]serialer, error) {
	gate := make(chan struct{})
	out := make([]serialer, n)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-gate:
			case <-ctx.Done():
				return ctx.Err()
			}
			out[i] = get()
			return nil
		})
	}
	close(gate)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
