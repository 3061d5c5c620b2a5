package main

import (
	"context"
	"log"

	"github.com/daystram/chess/bench"
)

func perft(ctx context.Context, depth int, layout string, parallel, verbose bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range out {
			log.Println(line)
		}
	}()

	_, err := bench.Perft(ctx, depth, layout, parallel, verbose, out)
	close(out)
	<-done
	return err
}
