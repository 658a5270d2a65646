package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texturekit/go-astc/astc"
)

// NewInspectCmd dumps the decoded structure of one compressed block.
func NewInspectCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <input.astc>",
		Short: "dump the structure of a single compressed block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := cmd.Flags().GetInt("block")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			h, payload, err := astc.ParseFile(data)
			if err != nil {
				return err
			}
			_, _, _, total, err := h.BlockCount()
			if err != nil {
				return err
			}
			if index < 0 || index >= total {
				return fmt.Errorf("block %d out of range [0, %d)", index, total)
			}

			block := payload[index*astc.BlockBytes : (index+1)*astc.BlockBytes]
			info, err := astc.InspectBlock(block, int(h.BlockX), int(h.BlockY), int(h.BlockZ))
			if err != nil {
				return err
			}

			fmt.Printf("block %d: %s\n", index, hex.EncodeToString(block))
			switch {
			case info.IsErrorBlock:
				fmt.Printf("  error: %s\n", info.ErrorReason)
			case info.IsConstantBlock:
				kind := "unorm16"
				if info.IsFP16Constant {
					kind = "fp16"
				}
				fmt.Printf("  constant (%s): %v\n", kind, info.ConstantColor)
			default:
				fmt.Printf("  mode %#03x, %d partition(s), seed %d\n",
					info.BlockMode, info.PartitionCount, info.PartitionSeed)
				fmt.Printf("  weights %dx%dx%d, %d levels\n",
					info.WeightX, info.WeightY, info.WeightZ, info.WeightLevelCount)
				if info.IsDualPlaneBlock {
					fmt.Printf("  dual plane, second component %d\n", info.DualPlaneComponent)
				}
				fmt.Printf("  color levels %d, endpoint modes %v\n",
					info.ColorLevelCount, info.ColorEndpointModes[:info.PartitionCount])
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.IntP("block", "b", 0, "block index to inspect")
	return cmd
}
