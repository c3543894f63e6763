package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forPelevin/segview/internal/app"
	"github.com/forPelevin/segview/internal/logger"
	"github.com/forPelevin/segview/internal/usecase"
)

func newUsecase(cmd *cobra.Command) (usecase.Usecase, error) {
	baseURL, _ := cmd.Flags().GetString("base-url")
	storeDir, _ := cmd.Flags().GetString("store")
	level, _ := cmd.Flags().GetString("log-level")
	strict, _ := cmd.Flags().GetBool("strict")

	cfg := app.Config{
		BaseURL:  baseURL,
		StoreDir: storeDir,
		Strict:   strict,
		Log:      logger.New(level, cmd.ErrOrStderr()),
	}
	if err := cfg.Validate(); err != nil {
		return usecase.Usecase{}, fmt.Errorf("config: %w", err)
	}
	return app.New(cfg), nil
}

// readJSON decodes the file named by args[0], or stdin when it is absent or "-".
func readJSON(cmd *cobra.Command, args []string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// writeJSON indents output for people and keeps it on one line for pipes.
func writeJSON(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
