package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/obeliskdev/mcchat/component"
	"github.com/obeliskdev/mcchat/protocol"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"
)

type rootFlags struct {
	verbose  bool
	protocol string
	jsonc    bool

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "mcchat",
		Short:         "mcchat converts Minecraft chat components between their wire forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.log = newLogger(cmd.ErrOrStderr(), flags.verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.protocol, "protocol", "p", "latest", "Target game version, e.g. 1.12.2")
	cmd.PersistentFlags().BoolVar(&flags.jsonc, "jsonc", false, "Accept comments and trailing commas in the input")

	cmd.AddCommand(newDecodeCmd(flags))
	cmd.AddCommand(newPlainCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func (f *rootFlags) version() (protocol.Version, error) {
	if f.protocol == "" || f.protocol == "latest" {
		return protocol.Latest, nil
	}
	v, ok := protocol.VersionFromString(f.protocol)
	if !ok {
		return 0, fmt.Errorf("unknown game version %q", f.protocol)
	}
	return v, nil
}

// readComponent reads the file named by args, or stdin when it is absent or
// "-", and decodes it.
func (f *rootFlags) readComponent(cmd *cobra.Command, args []string) (component.Component, protocol.Version, error) {
	v, err := f.version()
	if err != nil {
		return nil, 0, err
	}

	var data []byte
	source := "stdin"
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		source = args[0]
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", source, err)
	}

	if f.jsonc {
		data = jsonc.ToJSON(data)
	}

	c, err := protocol.CodecFor(v).Unmarshal(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", source, err)
	}

	f.log.Debug().
		Str("source", source).
		Int("bytes", len(data)).
		Stringer("kind", c.Kind()).
		Stringer("version", v).
		Msg("decoded component")

	return c, v, nil
}
