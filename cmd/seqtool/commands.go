package main

import (
	"github.com/spf13/cobra"

	"go.ytsaurus.tech/library/go/collection/internal/app"
)

var (
	flagKey  string
	flagDesc bool
	flagSize int
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort the range in place, the sort is not stable",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := e.app.Sort(e.values, selectedRange(), app.SortOptions{Key: flagKey, Desc: flagDesc}); err != nil {
			return err
		}
		return e.write(e.values)
	},
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle the range in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := e.app.Shuffle(e.values, selectedRange()); err != nil {
			return err
		}
		return e.write(e.values)
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Reverse the range in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := e.app.Reverse(e.values, selectedRange()); err != nil {
			return err
		}
		return e.write(e.values)
	},
}

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Print the range only",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		part, err := e.app.Slice(e.values, selectedRange())
		if err != nil {
			return err
		}
		return e.write(part)
	},
}

var chunkCmd = &cobra.Command{
	Use:   "chunk",
	Short: "Split the range into lists of --size elements",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		chunks, err := e.app.Chunk(e.values, selectedRange(), flagSize)
		if err != nil {
			return err
		}
		return e.write(chunks)
	},
}

func init() {
	sortCmd.Flags().StringVar(&flagKey, "key", app.KeyIdentity, "sort key: identity, abs or len")
	sortCmd.Flags().BoolVar(&flagDesc, "desc", false, "sort in descending order")

	shuffleCmd.Flags().Int64("seed", 0, "seed of the random source, overrides config")

	chunkCmd.Flags().IntVar(&flagSize, "size", 1, "chunk size")

	rootCmd.AddCommand(sortCmd, shuffleCmd, reverseCmd, sliceCmd, chunkCmd)
}
