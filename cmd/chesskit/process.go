// process.go - PGN input processing pipeline
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync/atomic"

	"github.com/apex/log"
	"golang.org/x/sync/errgroup"

	"github.com/chesskit-go/chesskit/internal/collection"
	"github.com/chesskit-go/chesskit/internal/pgn"
	"github.com/chesskit-go/chesskit/internal/worker"
)

// processInputs parses every input file (or stdin) into a collection,
// deduplicating along the way, then re-emits the games to out in PGN
// export format.
func processInputs(filenames []string, opts pgn.Options, out io.Writer) (collection.Summary, error) {
	games := collection.New()

	pool := worker.NewPool(func(item worker.Item) worker.Result {
		record, duplicate := games.Add(item.Game)
		return worker.Result{
			Index:     item.Index,
			Game:      item.Game,
			Record:    record,
			Duplicate: duplicate,
		}
	}, worker.WithWorkers(*workersFlag), worker.WithBufferSize(64))
	pool.Start()

	// ordered maps submission index to game for in-order output.
	ordered := make(map[int]*pgn.Game)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for result := range pool.Results() {
			if result.Duplicate {
				log.WithField("index", result.Index).Debug("duplicate game")
				if *suppressDuplicates {
					continue
				}
			}
			ordered[result.Index] = result.Game
		}
	}()

	var nextIndex int64
	var group errgroup.Group

	submit := func(r io.Reader, name string) error {
		parser := pgn.NewParser(r, opts)
		count := 0
		for {
			game, err := parser.ParseGame()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if game == nil {
				break
			}
			pool.Submit(worker.Item{
				Game:  game,
				Index: int(atomic.AddInt64(&nextIndex, 1)) - 1,
			})
			count++
		}
		log.WithFields(log.Fields{"file": name, "games": count}).Debug("parsed input")
		return nil
	}

	if len(filenames) == 0 {
		group.Go(func() error {
			return submit(os.Stdin, "stdin")
		})
	}
	for _, filename := range filenames {
		filename := filename
		group.Go(func() error {
			file, err := os.Open(filename)
			if err != nil {
				return err
			}
			defer file.Close()
			return submit(file, filename)
		})
	}

	err := group.Wait()
	pool.Close()
	<-drained
	if err != nil {
		return collection.Summary{}, err
	}

	if writeErr := writeOrdered(out, ordered); writeErr != nil {
		return collection.Summary{}, writeErr
	}
	return games.Summarize(), nil
}

// writeOrdered emits games in submission order.
func writeOrdered(out io.Writer, ordered map[int]*pgn.Game) error {
	indexes := make([]int, 0, len(ordered))
	for index := range ordered {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)

	writer := pgn.NewWriter(out)
	for _, index := range indexes {
		if err := writer.WriteGame(ordered[index]); err != nil {
			return err
		}
	}
	return nil
}

// reportSummary prints collection statistics to stderr.
func reportSummary(summary collection.Summary) {
	fmt.Fprintf(os.Stderr, "%d game(s), %d duplicate(s).\n", summary.Games, summary.Duplicates)
	if summary.Games == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "plies: mean %.1f, median %.1f, stddev %.1f\n",
		summary.MeanPlies, summary.MedianPlies, summary.StdDevPlies)
	for _, result := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if n := summary.Results[result]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-7s %d\n", result, n)
		}
	}
}
