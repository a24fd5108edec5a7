package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvandessel/rankforge/internal/export"
	"github.com/nvandessel/rankforge/internal/propgraph"
	"github.com/nvandessel/rankforge/internal/protocol"
	"github.com/nvandessel/rankforge/internal/sheet"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a ranking as a property graph or operation batch",
		Long: `Export replays a ranking sheet and writes the result to a file.

Examples:
  rankforge export graph movies.yaml -o movies-graph.json
  rankforge export ops movies.yaml -o movies-ops.json --title "Movie night"`,
	}

	cmd.AddCommand(
		newExportGraphCmd(),
		newExportOpsCmd(),
	)

	return cmd
}

func newExportGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <sheet.yaml>",
		Short: "Write the property graph JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")

			sess, err := replaySheet(args[0])
			if err != nil {
				return err
			}

			pg := propgraph.FromKnowledgeGraph(buildGraph(sess))
			if err := export.WritePropertyGraph(out, pg); err != nil {
				return err
			}

			fmt.Printf("Wrote %d entities, %d relations to %s\n",
				len(pg.Entities), len(pg.Relations), out)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "property-graph.json", "Output file")
	return cmd
}

func newExportOpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops <sheet.yaml>",
		Short: "Write the knowledge-graph operation batch JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("output")
			title, _ := cmd.Flags().GetString("title")
			desc, _ := cmd.Flags().GetString("description")

			s, err := sheet.Load(args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = s.Title
			}
			if desc == "" {
				desc = s.Description
			}

			cats, err := loadCatalogs()
			if err != nil {
				return err
			}
			sess, err := s.Replay(cats)
			if err != nil {
				return err
			}

			// Nothing placed means nothing to encode; reject before the
			// encoder is ever invoked.
			if sess.PlacedCount() == 0 {
				return fmt.Errorf("sheet places no items; rank something before exporting")
			}

			pg := propgraph.FromKnowledgeGraph(buildGraph(sess))

			logger := newLogger()
			defer logger.Sync()

			encoder := protocol.NewEncoder(logger)
			job := encoder.Start(pg, protocol.Metadata{Title: title, Description: desc})

			batch, err := job.Wait()
			if err != nil {
				return fmt.Errorf("encoding failed: %w", err)
			}

			if err := export.WriteBatch(out, batch); err != nil {
				return err
			}

			fmt.Printf("Wrote %q to %s\n", batch.Name, out)
			fmt.Printf("  %d entity op(s), %d property op(s), %d relation op(s), %d total\n",
				batch.Summary.EntityOps, batch.Summary.PropertyOps,
				batch.Summary.RelationOps, batch.Summary.Total)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "ops.json", "Output file")
	cmd.Flags().String("title", "", "Batch title (defaults to the sheet title, then the rank list name)")
	cmd.Flags().String("description", "", "Batch description")
	return cmd
}
