package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forPelevin/segview/internal/domain/segments"
	"github.com/forPelevin/segview/internal/routes"
	"github.com/forPelevin/segview/internal/types"
	"github.com/forPelevin/segview/internal/usecase"
)

func compactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact [file|-]",
		Short: "Convert segment objects to compact arrays",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			var segs []types.Segment
			if err := readJSON(cmd, args, &segs); err != nil {
				return err
			}
			out, err := uc.Compact(segs)
			if err != nil {
				return err
			}
			return writeJSON(cmd, out)
		},
	}
}

func expandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [file|-]",
		Short: "Convert compact arrays to segment objects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			var compact []types.Compact
			if err := readJSON(cmd, args, &compact); err != nil {
				return err
			}
			out, err := uc.Expand(compact)
			if err != nil {
				return err
			}
			return writeJSON(cmd, out)
		},
	}
}

func decodeParamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-param <param>",
		Short: "Decode a base64, URI-encoded route parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := segments.DecodeQueryParam(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func encodeParamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-param <text>",
		Short: "Encode text as a route parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), segments.EncodeQueryParam(args[0]))
			return nil
		},
	}
}

func shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share [file|-]",
		Short: "Build a viewer link for a list of segments",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			var segs []types.Segment
			if err := readJSON(cmd, args, &segs); err != nil {
				return err
			}
			header, _ := cmd.Flags().GetString("header")
			link, err := uc.Share(usecase.ShareInput{Segments: segs, Header: header})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().String("header", "", "Optional header text shown by the viewer")
	return cmd
}

func openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <link>",
		Short: "Show the view and segments a link resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			v, err := uc.Open(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, v)
		},
	}
}

func saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> [file|-]",
		Short: "Store a list of segments under a name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			var segs []types.Segment
			if err := readJSON(cmd, args[1:], &segs); err != nil {
				return err
			}
			return uc.Save(cmd.Context(), args[0], segs)
		},
	}
}

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "Print a stored list of segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			segs, err := uc.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, segs)
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			names, err := uc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func typesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Write TypeScript declarations for the viewer front end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := newUsecase(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			p, err := uc.GenerateTypes(cmd.Context(), out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().String("out", "src/types", "Output directory")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the viewer route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range routes.Table() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", r.Path, r.Name)
			}
			return nil
		},
	}
}
