package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"lspwire/src/wire/jsonrpc"
)

func runInspectCmd(cmd *cobra.Command, args []string) error {
	return inspectFrames(cmd.InOrStdin(), cmd.OutOrStdout())
}

// inspectFrames decodes every frame of r and writes its header and indented
// body to w. It stops at a clean end of input.
func inspectFrames(r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)
	for n := 1; ; n++ {
		body, err := jsonrpc.ReadFrame(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, body, "", "  "); err != nil {
			return fmt.Errorf("frame %d: invalid JSON body: %w", n, err)
		}
		if _, err := fmt.Fprintf(w, "Content-Length: %d\n%s\n\n", len(body), pretty.Bytes()); err != nil {
			return err
		}
	}
}
