package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvandessel/rankforge/internal/graph"
	"github.com/nvandessel/rankforge/internal/scoring"
	"github.com/nvandessel/rankforge/internal/session"
	"github.com/nvandessel/rankforge/internal/sheet"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <sheet.yaml>",
		Short: "Render the ranking a sheet produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			sess, err := replaySheet(args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				g := buildGraph(sess)
				return json.NewEncoder(os.Stdout).Encode(g)
			}

			if sess.Mode() == scoring.ModeTier {
				renderTiers(sess)
			} else {
				renderOrder(sess)
			}
			return nil
		},
	}
}

// replaySheet loads a sheet and replays it into a fresh session.
func replaySheet(path string) (*session.Session, error) {
	s, err := sheet.Load(path)
	if err != nil {
		return nil, err
	}
	cats, err := loadCatalogs()
	if err != nil {
		return nil, err
	}
	return s.Replay(cats)
}

// buildGraph snapshots a session into a knowledge graph.
func buildGraph(sess *session.Session) graph.KnowledgeGraph {
	list := graph.NewRankList(sess.ID(), sess.Name())
	return graph.Build(list, sess.Category().Items, sess.Scores())
}

func renderTiers(sess *session.Session) {
	cat := sess.Category()
	scores := sess.Scores()

	fmt.Printf("%s (tier)\n", sess.Name())
	for _, tier := range scoring.Tiers {
		fmt.Printf("%s |", tier.Label)
		for _, id := range sess.Order() {
			if scores[id] != tier.Score {
				continue
			}
			if it, ok := cat.Item(id); ok {
				fmt.Printf(" %s %s", it.Glyph, it.Name)
			}
		}
		fmt.Println()
	}
}

func renderOrder(sess *session.Session) {
	cat := sess.Category()
	scores := sess.Scores()

	fmt.Printf("%s (%s)\n", sess.Name(), sess.Mode())
	for i, id := range sess.Order() {
		it, _ := cat.Item(id)
		fmt.Printf("%2d. %s %s (%.2f)\n", i+1, it.Glyph, it.Name, scores[id])
	}
}
