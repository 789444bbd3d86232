package gamecard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dasdy/gamecard/web"
	cs "github.com/dasdy/gamecard/web/components"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	inputDir   string
	outputPath string
	tab        string
	conference string
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render game payloads to standalone HTML",
	Long: `Render a single payload with -f, or every payload in a directory with --dir.
Pages carry their stylesheet inline and can be opened without a server.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		state := cs.ViewState{Tab: cs.Tab(tab), Conference: conference}

		switch {
		case inputFile != "" && inputDir != "":
			return errors.New("use either --file or --dir, not both")
		case inputDir != "":
			return renderDir(cmd, state)
		case inputFile != "":
			return renderFile(cmd, state)
		default:
			return errors.New("nothing to render: pass --file or --dir")
		}
	},
}

func renderFile(cmd *cobra.Command, state cs.ViewState) error {
	var out io.Writer = cmd.OutOrStdout()

	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", outputPath, err)
		}
		defer file.Close()

		out = file
	}

	if err := web.RenderFile(cmd.Context(), inputFile, out, state); err != nil {
		return err
	}

	slog.Info("Rendered card", "input", inputFile, "output", outputPath)

	return nil
}

func renderDir(cmd *cobra.Command, state cs.ViewState) error {
	if outputPath == "" {
		return errors.New("--output directory is required with --dir")
	}

	bar := progressbar.Default(-1, "Rendering cards")

	rendered, err := web.RenderDir(cmd.Context(), inputDir, outputPath, state, func() {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	slog.Info("Rendered cards", "count", rendered, "output", outputPath)

	if err != nil {
		return fmt.Errorf("some payloads could not be rendered: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Payload file to render")
	renderCmd.Flags().StringVar(&inputDir, "dir", "", "Directory of payload files to render")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file (stdout when empty), or output directory with --dir")
	renderCmd.Flags().StringVar(&tab, "tab", string(cs.TabHome), "Player stats tab: home or away")
	renderCmd.Flags().StringVar(&conference, "conference", "", "Standings conference to show")
}
