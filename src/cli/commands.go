package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lspwire/src/internal/common"
	versionpkg "lspwire/src/internal/version"
)

// CLI Constants
const (
	CmdFrame      = "frame"
	CmdHandshake  = "handshake"
	CmdInspect    = "inspect"
	CmdVersion    = "version"
	FlagConfig    = "config"
	FlagVerbose   = "verbose"
	FlagFile      = "file"
	FlagURI       = "uri"
	FlagLine      = "line"
	FlagOffset    = "offset"
	FlagVersion   = "version"
	FlagTextFile  = "text-file"
	FlagLanguage  = "language-id"
	FlagName      = "name"
	FlagFiletype  = "filetype"
	FlagRoot      = "root"
	FlagPID       = "pid"
	FlagSequenced = "sequential-ids"
)

// options holds every flag value of one command tree
type options struct {
	configPath string
	verbose    bool

	file       string
	uri        string
	line       int
	offset     int
	version    int
	textFile   string
	languageID string
	name       string
	filetype   string
	root       string
	pid        int
	sequential bool
}

// NewRootCommand builds the lspwire command tree. Each call returns an
// independent tree so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lspwire",
		Short: "lspwire - build framed LSP JSON-RPC messages",
		Long: `lspwire builds Language Server Protocol client messages and frames them
with Content-Length headers, ready to be written to a language server's stdin.

AVAILABLE COMMANDS:
  lspwire frame <method>                   # Frame one message
  lspwire handshake --root . --file a.go   # Frame the session start-up sequence
  lspwire inspect < frames.bin             # Decode and pretty-print frames
  lspwire version                          # Show version information

Frames go to stdout. Logs, including request ids, go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				common.SetGlobalLevel(common.LogDebug)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, FlagConfig, "c", "", "Configuration file path (optional, will use defaults if not provided)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, FlagVerbose, "v", false, "Enable debug logging on stderr")

	frameCmd := &cobra.Command{
		Use:   CmdFrame + " <method>",
		Short: "Frame a single LSP message",
		Long: `Build one LSP message from flags and write its frame to stdout.

The method may be a full LSP method name or a short alias:
  initialize, initialized, configuration, didOpen, didSave, didChange,
  completion, definition, format, rename, signature, hover

Examples:
  lspwire frame hover --file main.go --line 10 --offset 4
  lspwire frame rename --file main.go --line 3 --offset 5 --name NewName
  lspwire frame didOpen --file main.go
  lspwire frame initialize --root .`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrameCmd(cmd, opts, args[0])
		},
	}
	frameCmd.Flags().StringVarP(&opts.file, FlagFile, "f", "", "Document path, converted to a file:// URI")
	frameCmd.Flags().StringVar(&opts.uri, FlagURI, "", "Document URI, used verbatim")
	frameCmd.Flags().IntVarP(&opts.line, FlagLine, "l", 0, "Zero-based line")
	frameCmd.Flags().IntVarP(&opts.offset, FlagOffset, "o", 0, "Zero-based character offset")
	frameCmd.Flags().IntVar(&opts.version, FlagVersion, 1, "Document version")
	frameCmd.Flags().StringVar(&opts.textFile, FlagTextFile, "", "File holding the document text (defaults to --file)")
	frameCmd.Flags().StringVar(&opts.languageID, FlagLanguage, "", "Language identifier (defaults to the configured filetype)")
	frameCmd.Flags().StringVarP(&opts.name, FlagName, "n", "", "New symbol name for rename")
	frameCmd.Flags().StringVarP(&opts.filetype, FlagFiletype, "t", "", "Filetype (defaults to detection from the document extension)")
	frameCmd.Flags().StringVarP(&opts.root, FlagRoot, "r", "", "Workspace root for initialize (defaults to the working directory)")
	frameCmd.Flags().IntVar(&opts.pid, FlagPID, 0, "Client process id for initialize (defaults to this process)")
	frameCmd.Flags().BoolVar(&opts.sequential, FlagSequenced, false, "Use sequential ids instead of random ones")

	handshakeCmd := &cobra.Command{
		Use:   CmdHandshake,
		Short: "Frame the session start-up sequence",
		Long: `Write initialize, initialized, workspace/didChangeConfiguration and,
when --file is given, textDocument/didOpen frames to stdout.

Examples:
  lspwire handshake --root .
  lspwire handshake --root . --file main.go --config lspwire.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHandshakeCmd(cmd, opts)
		},
	}
	handshakeCmd.Flags().StringVarP(&opts.root, FlagRoot, "r", "", "Workspace root (defaults to the working directory)")
	handshakeCmd.Flags().StringVarP(&opts.file, FlagFile, "f", "", "Document to open after the handshake")
	handshakeCmd.Flags().StringVarP(&opts.filetype, FlagFiletype, "t", "", "Filetype (defaults to detection from --file)")
	handshakeCmd.Flags().StringVar(&opts.languageID, FlagLanguage, "", "Language identifier for the opened document")
	handshakeCmd.Flags().IntVar(&opts.pid, FlagPID, 0, "Client process id (defaults to this process)")
	handshakeCmd.Flags().BoolVar(&opts.sequential, FlagSequenced, false, "Use sequential ids instead of random ones")

	inspectCmd := &cobra.Command{
		Use:   CmdInspect,
		Short: "Decode frames from stdin",
		Long: `Read Content-Length framed messages from stdin and pretty-print each body.

Examples:
  lspwire frame hover --file main.go | lspwire inspect`,
		Args: cobra.NoArgs,
		RunE: runInspectCmd,
	}

	versionCmd := &cobra.Command{
		Use:   CmdVersion,
		Short: "Show version information",
		Long: `Display version information for lspwire.

By default, shows only the version number. Use --verbose for detailed build information
including commit hash, build date, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersionCmd(cmd, opts)
		},
	}

	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(handshakeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

func runVersionCmd(cmd *cobra.Command, opts *options) error {
	if opts.verbose {
		fmt.Fprintln(cmd.OutOrStdout(), versionpkg.GetFullVersionInfo())
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "lspwire %s\n", versionpkg.GetVersion())
	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
