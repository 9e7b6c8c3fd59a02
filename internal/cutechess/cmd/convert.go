package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jconsidi/cutechess/pkg/common"
	"github.com/jconsidi/cutechess/pkg/pgn"
)

// cutechess convert
func Convert() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert file...",
		Short: "Rewrite PGN files in canonical form",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`convert reads every game from the given PGN files and
			appends a canonical rendition of each one to the output
			file. Games that fail to parse are reported and skipped;
			whatever moves were read before the failure are kept.

			When --output is not given, games are appended to
			games.pgn inside the cutechess directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			maxMoves, _ := cmd.Flags().GetInt("max-moves")
			if maxMoves < 1 {
				return fmt.Errorf("--max-moves must be at least 1, got %d", maxMoves)
			}
			if output == "" {
				common.TryMkdir(common.Directory)
				output = common.GamesFile
			}

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Converting games..."
			s.Start()

			// Each file gets its own reader and its own boards, so the
			// files can be parsed in parallel.
			games := make([][]*pgn.Game, len(args))
			var group errgroup.Group
			for i, name := range args {
				group.Go(func() error {
					parsed, err := readGames(name, maxMoves)
					games[i] = parsed
					return err
				})
			}
			err := group.Wait()

			s.Stop()
			if err != nil {
				return err
			}

			total := 0
			for _, file := range games {
				for _, game := range file {
					if err := game.WriteToFile(output); err != nil {
						return err
					}
					total++
				}
			}

			logrus.Infof("wrote %d games to %s", total, output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "File the canonical games are appended to")
	cmd.Flags().Int("max-moves", 1000, "Maximum number of plies read per game")

	return cmd
}

func readGames(name string, maxMoves int) ([]*pgn.Game, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var games []*pgn.Game
	reader := pgn.NewReader(file)
	for {
		game, err := reader.ReadGame(maxMoves)
		if errors.Is(err, io.EOF) {
			return games, nil
		}
		if err != nil && !errors.Is(err, pgn.ErrUnexpectedTag) {
			logrus.Warnf("%s: %v", name, err)
		}
		if !game.IsEmpty() {
			games = append(games, game)
		}
	}
}
