package main

import (
	"bytes"
	"fmt"

	"github.com/obeliskdev/mcchat/protocol"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDecodeCmd(flags *rootFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:     "decode [file]",
		Aliases: []string{"encode", "fmt"},
		Short:   "Print the canonical JSON form of a component",
		Long: "Reads a component in any accepted form (bare string, array or object) " +
			"and prints its canonical object form for the target version.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, v, err := flags.readComponent(cmd, args)
			if err != nil {
				return err
			}

			data, err := protocol.CodecFor(v).Marshal(c)
			if err != nil {
				return fmt.Errorf("encode component: %w", err)
			}

			if asYAML {
				if data, err = toYAML(data); err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print YAML instead of JSON")

	return cmd
}

// toYAML re-emits JSON as block style YAML, keeping the key order.
func toYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("convert to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle drops the flow and quoting styles the JSON parse left behind. The
// encoder still quotes strings that would otherwise read as another type.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
