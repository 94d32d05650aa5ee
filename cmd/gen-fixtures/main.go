// Command gen-fixtures writes a synthetic store snapshot for local runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Public-Shorts/curation/internal/fixtures"
)

func main() {
	defaults := fixtures.DefaultConfig()
	var (
		curators    = flag.Int("curators", defaults.Curators, "Number of non-jury curators")
		jurors      = flag.Int("jurors", defaults.Jurors, "Number of jury-role curators")
		submissions = flag.Int("submissions", defaults.Submissions, "Number of submissions")
		seed        = flag.Int64("seed", defaults.Seed, "Random seed; same seed, same snapshot")
		output      = flag.String("output", "snapshot.json", "Output file")
	)
	flag.Parse()

	snap := fixtures.Generate(fixtures.Config{
		Curators:    *curators,
		Jurors:      *jurors,
		Submissions: *submissions,
		Seed:        *seed,
	})

	data, err := json.MarshalIndent(snap, "", "\t")
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode snapshot:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write snapshot:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s: %d curators, %d submissions, %d reviews\n",
		*output, len(snap.Curators), len(snap.Submissions), len(snap.Reviews))
}
