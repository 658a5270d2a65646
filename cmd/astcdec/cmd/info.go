package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texturekit/go-astc/astc"
)

// NewInfoCmd prints the container header of a .astc file.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input.astc>",
		Short: "print .astc header info",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			h, payload, err := astc.ParseFile(data)
			if err != nil {
				return err
			}
			bx, by, bz, total, err := h.BlockCount()
			if err != nil {
				return err
			}

			if format, _ := cmd.Flags().GetString("format"); format == "json" {
				out := map[string]any{
					"blockX": h.BlockX, "blockY": h.BlockY, "blockZ": h.BlockZ,
					"sizeX": h.SizeX, "sizeY": h.SizeY, "sizeZ": h.SizeZ,
					"blocksX": bx, "blocksY": by, "blocksZ": bz,
					"blocks":       total,
					"payloadBytes": len(payload),
				}
				j, err := json.Marshal(out)
				if err != nil {
					return err
				}
				os.Stdout.Write(j)
				fmt.Println()
				return nil
			}

			fmt.Println(h.String())
			fmt.Printf("%d blocks (%dx%dx%d), %d payload bytes\n", total, bx, by, bz, len(payload))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("format", "f", "text", "output format (text|json)")
	return cmd
}
