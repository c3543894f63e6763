package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forPelevin/segview/internal/routes"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := NewRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "segview",
		Short:         "Convert, share and store video segment lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("base-url", getenvDefault("SEGVIEW_BASE_URL", routes.DefaultBaseURL), "Public URL the viewer is served from")
	pf.String("store", getenvDefault("SEGVIEW_STORE_DIR", ".segview"), "Directory for saved collections")
	pf.String("log-level", getenvDefault("SEGVIEW_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	pf.Bool("strict", false, "Reject segments with negative or reversed times")

	root.AddCommand(
		compactCmd(),
		expandCmd(),
		decodeParamCmd(),
		encodeParamCmd(),
		shareCmd(),
		openCmd(),
		saveCmd(),
		loadCmd(),
		listCmd(),
		typesCmd(),
		routesCmd(),
	)
	return root
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
