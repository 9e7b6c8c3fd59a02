package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jconsidi/cutechess/pkg/pgn"
)

// cutechess validate
func Validate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate file...",
		Short: "Check PGN files for parse errors",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`validate reads every game from the given PGN files and
			reports the items the parser rejects: illegal moves,
			invalid FEN tags, out-of-range numeric annotations, and
			games missing their termination marker. Non-fatal
			diagnostics are shown at trace level.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxMoves, _ := cmd.Flags().GetInt("max-moves")
			if maxMoves < 1 {
				return fmt.Errorf("--max-moves must be at least 1, got %d", maxMoves)
			}

			var games, bad int
			for _, name := range args {
				g, b, err := validateFile(name, maxMoves)
				if err != nil {
					return err
				}
				games += g
				bad += b
			}

			logrus.Infof("%d games read, %d with errors", games, bad)
			if bad > 0 {
				return fmt.Errorf("%d of %d games failed to parse", bad, games)
			}
			return nil
		},
	}

	cmd.Flags().Int("max-moves", 1000, "Maximum number of plies read per game")

	return cmd
}

func validateFile(name string, maxMoves int) (games, bad int, err error) {
	file, err := os.Open(name)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	index := 0
	reader := pgn.NewReader(file)
	for {
		index++
		game, err := reader.ReadGame(maxMoves, pgn.WithDiagnostics(func(msg string) {
			logrus.Tracef("%s: game %d: %s", name, index, msg)
		}))
		if errors.Is(err, io.EOF) {
			return games, bad, nil
		}
		if !game.IsEmpty() {
			games++
		}
		if err != nil && !errors.Is(err, pgn.ErrUnexpectedTag) {
			bad++
			logrus.Errorf("%s: game %d: %v", name, index, err)
		}
	}
}
