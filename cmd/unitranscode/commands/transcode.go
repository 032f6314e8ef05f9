package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zyl910/zlutf"
)

var (
	fromFlag           string
	toFlag             string
	inputFlag          string
	outputFlag         string
	nullTerminatedFlag bool
	allowFallbackFlag  bool
	maxOutputBytesFlag int64
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode",
	Short: "Transcode a byte stream between encodings",
	Long: `transcode reads --input (or stdin) in the --from encoding and writes
--output (or stdout) in the --to encoding, streaming the conversion in
fixed-size chunks rather than loading the whole input into memory.

Examples:
  # UTF-8 file to UTF-16LE, streaming through stdin/stdout
  unitranscode transcode --from utf8 --to utf16le < input.txt > output.utf16le

  # Windows-1252 file to UTF-8, with substitution on unencodable code points
  unitranscode transcode --from narrow --to utf8 --allow-fallback --input in.txt --output out.txt`,
	RunE: runTranscode,
}

func init() {
	transcodeCmd.Flags().StringVar(&fromFlag, "from", "", "source encoding (narrow, utf8, utf16be, utf16le, utf32be, utf32le)")
	transcodeCmd.Flags().StringVar(&toFlag, "to", "", "destination encoding")
	transcodeCmd.Flags().StringVar(&inputFlag, "input", "", "input file (default: stdin)")
	transcodeCmd.Flags().StringVar(&outputFlag, "output", "", "output file (default: stdout)")
	transcodeCmd.Flags().BoolVar(&nullTerminatedFlag, "null-terminated", false, "stop decoding at the first NUL code point")
	transcodeCmd.Flags().BoolVar(&allowFallbackFlag, "allow-fallback", false, "substitute a default character instead of failing on unencodable code points")
	transcodeCmd.Flags().Int64Var(&maxOutputBytesFlag, "max-output-bytes", 0, "cap transcoded output at this many bytes instead of streaming unbounded (0 disables the cap)")
	_ = transcodeCmd.MarkFlagRequired("from")
	_ = transcodeCmd.MarkFlagRequired("to")
}

func runTranscode(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(fromFlag)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	dstEnc, err := parseEncoding(toFlag)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	in, err := openInput(inputFlag)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := createOutput(outputFlag)
	if err != nil {
		return err
	}
	defer out.Close()

	src, err := zlutf.NewSource(in)
	if err != nil {
		return err
	}

	// --max-output-bytes routes the transcode through a fixed-capacity
	// BytesWriter instead of streaming straight to out, so a runaway or
	// mis-specified destination encoding can't produce unbounded output;
	// whatever fit within the cap is still flushed through on return.
	var bounded *zlutf.BytesWriter
	destWriter := out
	if maxOutputBytesFlag > 0 {
		bounded = zlutf.NewBytesWriter(make([]byte, maxOutputBytesFlag))
		destWriter = bounded
	}

	dst, err := zlutf.NewDestWriter(destWriter)
	if err != nil {
		return err
	}

	t, err := zlutf.NewTranscoder(srcEnc, dstEnc, nullTerminatedFlag)
	if err != nil {
		return err
	}

	var opts zlutf.PutResult
	if allowFallbackFlag {
		opts |= zlutf.AllowFallback
	}

	_, feedErr := src.FeedAll(t, dst.Sink(), opts)
	flushErr := dst.Flush()

	if bounded == nil {
		if feedErr != nil {
			return feedErr
		}
		return flushErr
	}

	// Hitting the cap surfaces as io.ErrShortWrite from BytesWriter, wrapped
	// in ErrSinkAborted by Transcoder.Feed; that is the expected outcome of
	// --max-output-bytes, not a failure, so whatever fit still gets written
	// through before returning.
	if _, err := out.Write(bounded.Bytes()); err != nil {
		return err
	}
	if feedErr != nil && !errors.Is(feedErr, io.ErrShortWrite) {
		return feedErr
	}
	if flushErr != nil && !errors.Is(flushErr, io.ErrShortWrite) {
		return flushErr
	}
	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func createOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
