// Command blocky plays the block-splitting puzzle in a window, or replays a
// recorded move script headlessly and prints the resulting score.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/blocky"
	"github.com/spf13/cobra"
)

const windowTitle = "Blocky"

var (
	configPath   string
	seed         uint64
	maxDepth     int
	boardSize    int
	debugMode    bool
	snapshotPath string
	snapshotCell int

	rootCmd = &cobra.Command{
		Use:           "blocky",
		Short:         "Rotate, reflect and smash blocks to reach a color goal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Open a window and play a random board",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	replayCmd = &cobra.Command{
		Use:   "replay [script.json]",
		Short: "Apply a recorded move script to a seeded board and print the score",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML board config file")
	pf.Uint64Var(&seed, "seed", 0, "random seed (overrides config)")
	pf.IntVar(&maxDepth, "max-depth", 0, "maximum subdivision depth (overrides config)")
	pf.IntVar(&boardSize, "size", 0, "board size in pixels (overrides config)")
	pf.BoolVar(&debugMode, "debug", false, "log moves and check invariants")

	replayCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "write the final board to this PNG file")
	replayCmd.Flags().IntVar(&snapshotCell, "cell", 16, "pixels per unit cell in the snapshot")

	rootCmd.AddCommand(playCmd, replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blocky:", err)
		os.Exit(1)
	}
}

// loadBoard builds a board from the config file with flag overrides applied.
func loadBoard(cmd *cobra.Command) (*blocky.Board, error) {
	cfg, err := blocky.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = maxDepth
	}
	if flags.Changed("size") {
		cfg.BoardSize = boardSize
	}
	if debugMode {
		cfg.Debug = true
	}
	return blocky.NewBoard(cfg)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	board, err := loadBoard(cmd)
	if err != nil {
		return err
	}
	return blocky.Run(board, blocky.RunConfig{Title: windowTitle})
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	script, err := blocky.LoadMoveScript(data)
	if err != nil {
		return err
	}
	board, err := loadBoard(cmd)
	if err != nil {
		return err
	}
	score, err := board.Play(script)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, board.Goal().Description())
	fmt.Fprintf(out, "moves: %d\nscore: %d\n", board.Moves(), score)

	if snapshotPath != "" {
		if err := board.Snapshot(snapshotPath, snapshotCell); err != nil {
			return err
		}
	}
	return nil
}
